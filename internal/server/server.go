// Package server exposes the career engine over HTTP.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/career"
)

// ShutdownTimeout bounds graceful shutdown once the run context is done.
const ShutdownTimeout = 10 * time.Second

// Options configures the HTTP app.
type Options struct {
	Logger zerolog.Logger
	// Registerer receives the HTTP metrics. Nil keeps them private.
	Registerer prometheus.Registerer
	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// New builds the fiber app with middleware and all routes registered.
func New(svc *career.Service, caps *capability.Registry, opts Options) *fiber.App {
	log := opts.Logger.With().Str("component", "http").Logger()

	app := fiber.New(fiber.Config{AppName: "pathwise"})
	app.Use(accessLog(log, newHTTPMetrics(opts.Registerer)))
	app.Use(errorHandler(log))

	app.Get("/health", func(c fiber.Ctx) error {
		return success(c, fiber.Map{
			"status":          "ok",
			"catalog_version": svc.Graph().Version(),
		})
	})
	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	NewHandler(svc, caps).RegisterRoutes(app.Group("/v1"))
	return app
}

// Run serves app on addr until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, app *fiber.App, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	log.Info().Str("addr", addr).Msg("http server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("http server stopped")
	return nil
}

package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/career"
)

// HeaderRequestID carries the per-request correlation ID.
const HeaderRequestID = "X-Request-ID"

type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	m := &httpMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathwise_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathwise_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// accessLog tags every request with an ID, then logs and counts it once the
// inner handlers have written the response.
func accessLog(log zerolog.Logger, m *httpMetrics) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()
		route := c.Route().Path

		m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(method, route).Observe(dur.Seconds())

		log.Info().
			Str("request_id", rid).
			Str("ip", c.IP()).
			Str("method", method).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("latency", dur).
			Int("resp_bytes", len(c.Response().Body())).
			Str("ua", c.Get(fiber.HeaderUserAgent)).
			Msg("http access")

		return err
	}
}

// errorHandler turns handler errors and panics into enveloped responses.
func errorHandler(log zerolog.Logger) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Path()).Msg("panic recovered")
				err = fail(c, fiber.StatusInternalServerError, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 {
			log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		}
		return fail(c, status, msg)
	}
}

func normalizeError(err error) (int, string) {
	var inputErr *career.InputError
	if errors.As(err, &inputErr) {
		return fiber.StatusBadRequest, inputErr.Error()
	}

	var invalid *capability.InvalidInputError
	if errors.As(err, &invalid) {
		return fiber.StatusBadRequest, invalid.Error()
	}

	if errors.Is(err, capability.ErrUnknownCapability) {
		return fiber.StatusNotFound, err.Error()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, MessageInternalServerError
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, MessageInternalServerError
}

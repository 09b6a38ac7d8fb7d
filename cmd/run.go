package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/career"
	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/skillgraph"
	"github.com/abhisek/pathwise/internal/ui/render"
)

// runtimeDeps is everything a command needs, built once per invocation.
type runtimeDeps struct {
	cfg      config.Config
	log      zerolog.Logger
	graph    *skillgraph.Graph
	svc      *career.Service
	caps     *capability.Registry
	registry *prometheus.Registry
	color    bool
}

var deps *runtimeDeps

// buildDeps loads configuration, applies flag overrides and wires the
// service and capability registry.
func buildDeps(cmd *cobra.Command) (*runtimeDeps, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	g := skillgraph.Default()
	if cfg.CatalogPath != "" {
		if g, err = skillgraph.LoadFile(cfg.CatalogPath); err != nil {
			return nil, err
		}
		log.Debug().Str("path", cfg.CatalogPath).Str("version", g.Version()).Msg("catalog loaded")
	}

	roadmapOpts, err := cfg.RoadmapOptions()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	svc := career.NewService(g, career.Options{
		Roadmap:    roadmapOpts,
		TopK:       cfg.TopK,
		Logger:     log,
		Registerer: reg,
	})

	noColor, _ := cmd.Flags().GetBool("no-color")
	return &runtimeDeps{
		cfg:      cfg,
		log:      log,
		graph:    g,
		svc:      svc,
		caps:     capability.Defaults(svc),
		registry: reg,
		color:    !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(cmd.OutOrStdout()),
	}, nil
}

func (d *runtimeDeps) printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), d.color)
}

// readInput returns the contents of a JSON file, or "{}" for an empty path.
func readInput(path string) (json.RawMessage, error) {
	if path == "" {
		return json.RawMessage(`{}`), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// withFields decodes a JSON object and overlays non-empty fields onto it.
func withFields(raw json.RawMessage, fields map[string]any) (json.RawMessage, error) {
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		obj[k] = b
	}
	return json.Marshal(obj)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

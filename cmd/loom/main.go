package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgo/loom/client"
	"github.com/forgo/loom/internal/config"
	"github.com/forgo/loom/metrics"
	"github.com/forgo/loom/plan"
	"github.com/forgo/loom/registry"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Build the backend
	api, cleanup, err := buildBackend(ctx, cfg)
	if err != nil {
		slog.Error("failed to build backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("backend ready", slog.String("backend", cfg.Backend))

	// Load the seed plan
	p, err := plan.Load(cfg.Plan.Path)
	if err != nil {
		slog.Error("failed to load plan",
			slog.String("path", cfg.Plan.Path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("plan loaded",
		slog.String("path", cfg.Plan.Path),
		slog.Int("kinds", len(p.Kinds)))

	// Optional metrics endpoint
	opts := []registry.Option{}
	if cfg.Metrics.Addr != "" {
		opts = append(opts, registry.WithRecorder(metrics.NewRecorder(prometheus.DefaultRegisterer)))
		go serveMetrics(cfg.Metrics.Addr)
	}

	// Run
	reg := registry.New(api, opts...)
	summary, err := plan.Run(ctx, reg, p)
	if err != nil {
		slog.Error("seed run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for kind, ids := range summary.Created {
		slog.Info("seeded kind",
			slog.String("kind", string(kind)),
			slog.Int("count", len(ids)))
	}
	slog.Info("seed run complete", slog.Int("total", summary.Total()))
}

// buildBackend constructs the configured backend and a cleanup function.
func buildBackend(ctx context.Context, cfg *config.Config) (client.Client, func(), error) {
	switch cfg.Backend {
	case config.BackendSurreal:
		backend, err := client.DialSurreal(ctx, client.SurrealConfig{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
		})
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { _ = backend.Close() }, nil
	default:
		backend, err := client.NewHTTP(client.HTTPConfig{
			BaseURL: cfg.HTTP.BaseURL,
			Token:   cfg.HTTP.Token,
			Timeout: cfg.HTTP.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	}
}

// serveMetrics exposes /metrics on addr for the lifetime of the run.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server stopped", slog.String("error", err.Error()))
	}
}

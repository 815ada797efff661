package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"NewswireNotifier/internal/config"
	"NewswireNotifier/internal/infrastructure/email"
	"NewswireNotifier/internal/infrastructure/httpapi"
	"NewswireNotifier/internal/infrastructure/source"
	"NewswireNotifier/internal/infrastructure/watcher"
	"NewswireNotifier/internal/infrastructure/webhook"
	"NewswireNotifier/internal/logging"
	"NewswireNotifier/internal/metrics"
	"NewswireNotifier/internal/ports"
	"NewswireNotifier/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	pipeline *usecase.Pipeline
}

// New builds the pipeline and its delivery adapters from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := prometheus.NewRegistry()

	var notifier ports.Notifier
	if cfg.Webhook.URL != "" {
		notifier = webhook.NewNotifier(cfg.Webhook.URL, &http.Client{Timeout: cfg.Webhook.Timeout})
	}

	var mirrors []ports.Notifier
	if mail := cfg.EmailSettings(); mail.Enabled() {
		mirrors = append(mirrors, email.NewNotifier(mail))
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Options:  cfg.Options(),
		Deliver:  cfg.DeliveryEnabled(),
		Debug:    cfg.Debug,
		Notifier: notifier,
		Mirrors:  mirrors,
		Recorder: metrics.New(registry),
		Logger:   baseLogger.With("component", "pipeline"),
	})

	baseLogger.Debug("application configured",
		"environment", cfg.Environment,
		"delivery", cfg.DeliveryEnabled(),
		"email_mirror", len(mirrors) > 0)

	return &Application{cfg: cfg, logger: baseLogger, registry: registry, pipeline: pipeline}
}

// Pipeline exposes the configured pipeline.
func (a *Application) Pipeline() *usecase.Pipeline {
	return a.pipeline
}

// Convert processes files matched by patterns, or stdin when there are none.
func (a *Application) Convert(ctx context.Context, patterns []string, stdin io.Reader) ([]usecase.Report, error) {
	src := source.NewFileSource(patterns, stdin, a.logger.With("component", "source"))
	return a.pipeline.ProcessAll(ctx, src)
}

// Serve runs the HTTP intake until ctx is cancelled.
func (a *Application) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.cfg.HTTP.Addr
	}
	srv := httpapi.NewServer(a.pipeline, a.registry, a.logger.With("component", "httpapi"))
	return srv.ListenAndServe(ctx, addr)
}

// Watch processes bulletins dropped into dir until ctx is cancelled.
func (a *Application) Watch(ctx context.Context, dir string) error {
	w := watcher.NewDropWatcher(dir, a.cfg.Watch.Debounce, a.logger.With("component", "watcher"))
	return w.Run(ctx, func(ctx context.Context, bulletin ports.Bulletin) {
		// failures are already logged by the pipeline
		_, _ = a.pipeline.Process(ctx, bulletin)
	})
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"NewswireNotifier/internal/domain"
	"NewswireNotifier/internal/newsml"
	"NewswireNotifier/internal/ports"
)

// PipelineDeps wires the driven adapters into the bulletin pipeline.
type PipelineDeps struct {
	Options  newsml.Options
	Deliver  bool
	Debug    bool
	Notifier ports.Notifier
	Mirrors  []ports.Notifier
	Recorder ports.Recorder
	Logger   *slog.Logger
}

// Pipeline turns raw bulletins into chat notifications.
type Pipeline struct {
	options  newsml.Options
	deliver  bool
	debug    bool
	notifier ports.Notifier
	mirrors  []ports.Notifier
	recorder ports.Recorder
	logger   *slog.Logger
}

// Report is the outcome of processing one bulletin.
type Report struct {
	Name    string
	Outcome domain.Outcome
	Result  newsml.Result
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		options:  deps.Options,
		deliver:  deps.Deliver,
		debug:    deps.Debug,
		notifier: deps.Notifier,
		mirrors:  deps.Mirrors,
		recorder: deps.Recorder,
		logger:   logger,
	}
}

// Process transforms a bulletin, applies the priority gate, and delivers the
// payload when delivery is enabled. The returned error wraps one of the
// domain sentinel errors; Report.Outcome is always set.
func (p *Pipeline) Process(ctx context.Context, bulletin ports.Bulletin) (Report, error) {
	started := time.Now()
	report := Report{Name: bulletin.Name}

	res, err := newsml.Transform(bulletin.Body, p.options)
	report.Result = res
	if err == nil {
		err = p.dispatch(ctx, res.Payload)
		report.Outcome = domain.OutcomeWithheld
		if err == nil && p.deliver && p.notifier != nil {
			report.Outcome = domain.OutcomeDelivered
		}
	}
	if err != nil {
		report.Outcome = domain.OutcomeOf(err)
	}

	p.dump(bulletin, res, report.Outcome)
	p.observe(res, report.Outcome, started)

	if err != nil {
		p.logger.Warn("bulletin not delivered",
			"bulletin", bulletin.Name,
			"outcome", report.Outcome,
			"error", err)
		return report, fmt.Errorf("bulletin %s: %w", bulletin.Name, err)
	}

	p.logger.Info("bulletin processed",
		"bulletin", bulletin.Name,
		"dialect", res.Dialect,
		"priority", res.Priority.Level,
		"urgent", res.Priority.Urgent,
		"attachments", len(res.Payload.Attachments),
		"skipped", res.Skipped,
		"outcome", report.Outcome)
	return report, nil
}

// ProcessAll runs every bulletin of a source and joins the failures.
func (p *Pipeline) ProcessAll(ctx context.Context, source ports.BulletinSource) ([]Report, error) {
	bulletins, err := source.Bulletins(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bulletins: %w", err)
	}

	reports := make([]Report, 0, len(bulletins))
	var errs []error
	for _, bulletin := range bulletins {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := p.Process(ctx, bulletin)
		reports = append(reports, report)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return reports, errors.Join(errs...)
}

func (p *Pipeline) dispatch(ctx context.Context, payload domain.NotificationPayload) error {
	if !p.deliver || p.notifier == nil {
		return nil
	}

	if err := p.notifier.Notify(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	for _, mirror := range p.mirrors {
		if err := mirror.Notify(ctx, payload); err != nil {
			p.logger.Warn("mirror delivery failed", "error", err)
		}
	}
	return nil
}

func (p *Pipeline) dump(bulletin ports.Bulletin, res newsml.Result, outcome domain.Outcome) {
	if !p.debug {
		return
	}

	payload, err := json.MarshalIndent(res.Payload, "", "  ")
	if err != nil {
		p.logger.Debug("marshal payload for dump", "error", err)
	}
	p.logger.Debug("---- Payload ----", "bulletin", bulletin.Name, "outcome", outcome, "payload", string(payload))
	p.logger.Debug("---- Input ----", "bulletin", bulletin.Name, "input", string(bulletin.Body))
}

func (p *Pipeline) observe(res newsml.Result, outcome domain.Outcome, started time.Time) {
	if p.recorder == nil {
		return
	}
	p.recorder.Observe(res.Dialect, outcome, len(res.Payload.Attachments), time.Since(started))
}

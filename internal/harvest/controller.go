package harvest

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/qepting91/complaint-harvester/internal/domain"
)

// Writer persists a finished harvest to a sink.
type Writer interface {
	Write(sink string, records []domain.Record) error
}

// Controller drives navigation, the reveal/extract loop and persistence for one request at a time.
// A Controller holds no per-harvest state and may run several harvests concurrently.
type Controller struct {
	cfg    Config
	writer Writer
	logger *slog.Logger
}

func NewController(cfg Config, writer Writer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{cfg: cfg, writer: writer, logger: logger}
}

// Run harvests req using page, which must be exclusive to this call.
//
// A navigation failure returns a result with no records and nothing is persisted.
// A persistence failure returns the complete result together with a *domain.PersistenceError,
// so the caller can retry Persist without harvesting again.
// If ctx ends, the loop stops after the current extraction pass, the partial result is
// persisted and ctx.Err() is returned with it.
func (c *Controller) Run(ctx context.Context, page domain.PageStateProvider, req domain.HarvestRequest) (*domain.HarvestResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	logger := c.logger.With("run_id", uuid.NewString(), "company", req.TargetID)
	logger.Info("Starting harvest", "max_items", req.MaxItems, "sink", req.OutputSink)

	result, err := c.collect(ctx, page, req, logger)
	if err != nil {
		return result, err
	}
	logger.Info("Harvest finished",
		"collected", result.CollectedCount,
		"skipped", result.Skipped,
		"reason", result.TerminationReason,
	)

	var errs []error
	if err := c.Persist(result, req.OutputSink); err != nil {
		logger.Error("Failed to persist harvest", "err", err)
		errs = append(errs, err)
	} else {
		logger.Info("Data saved", "sink", req.OutputSink)
	}
	if result.TerminationReason == domain.Cancelled {
		errs = append(errs, ctx.Err())
	}
	return result, errors.Join(errs...)
}

// Persist writes result to sink. It is safe to call again after a failure.
func (c *Controller) Persist(result *domain.HarvestResult, sink string) error {
	if err := c.writer.Write(sink, result.Persisted()); err != nil {
		return &domain.PersistenceError{Sink: sink, Err: err}
	}
	return nil
}

func (c *Controller) collect(ctx context.Context, page domain.PageStateProvider, req domain.HarvestRequest, logger *slog.Logger) (*domain.HarvestResult, error) {
	session := NewSession(page, logger)
	defer session.Close()

	acc := &domain.HarvestResult{
		TargetID: req.TargetID,
		Records:  make([]domain.RawPost, 0, req.MaxItems),
	}

	if err := session.Open(ctx, c.cfg, req.TargetID); err != nil {
		logger.Error("Failed to navigate", "err", err)
		acc.TerminationReason = domain.NavigationFailed
		return acc, err
	}

	expander := NewExpander(page, c.cfg.SettleInterval)
	extractor := NewExtractor(c.cfg.Selectors)
	monitor := NewMonitor(c.cfg.StagnationThreshold, req.MaxItems)

	if err := sleep(ctx, c.cfg.InitialWait); err != nil {
		logger.Warn("Initial wait interrupted", "err", err)
	}

	// Cards only show up after the first reveal.
	logger.Info("Performing initial reveal")
	c.expand(ctx, expander, logger)

	seen := 0
	for {
		cards, err := page.VisibleCards(ctx)
		visible := len(cards)
		if err != nil {
			// Counted as a pass without growth.
			logger.Warn("Reading visible cards failed", "err", err)
			cards, visible = nil, seen
		}

		batch := extractor.ExtractNew(cards, seen, len(acc.Records), req.MaxItems-len(acc.Records))
		seen += batch.Consumed
		acc.Records = append(acc.Records, batch.Posts...)
		acc.Skipped += len(batch.Skipped)
		for _, skip := range batch.Skipped {
			logger.Debug("Skipped card", "index", skip.Index, "err", skip.Err)
		}

		decision := monitor.Observe(visible, len(acc.Records))
		if decision.Stop {
			acc.TerminationReason = decision.Reason
			break
		}
		if ctx.Err() != nil {
			acc.TerminationReason = domain.Cancelled
			break
		}

		if monitor.Streak() > 0 {
			logger.Debug("Stagnation detected", "streak", monitor.Streak(), "threshold", c.cfg.StagnationThreshold, "cards", visible)
		} else {
			logger.Info("Found cards so far", "cards", visible, "collected", len(acc.Records))
		}

		c.expand(ctx, expander, logger)
	}

	session.Close()
	acc.CollectedCount = len(acc.Records)
	return acc, nil
}

func (c *Controller) expand(ctx context.Context, expander *Expander, logger *slog.Logger) {
	if err := expander.Expand(ctx); err != nil && ctx.Err() == nil {
		logger.Warn("Reveal step failed", "err", err)
	}
}

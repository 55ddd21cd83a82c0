package harvest

import (
	"context"
	"time"

	"github.com/qepting91/complaint-harvester/internal/domain"
)

// Expander performs one reveal step and then waits for the feed to settle.
type Expander struct {
	page   domain.PageStateProvider
	settle time.Duration
}

func NewExpander(page domain.PageStateProvider, settle time.Duration) *Expander {
	return &Expander{page: page, settle: settle}
}

// Expand knows nothing about how many cards appeared; the next extraction finds out.
func (e *Expander) Expand(ctx context.Context) error {
	if err := e.page.Reveal(ctx); err != nil {
		return err
	}
	return sleep(ctx, e.settle)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

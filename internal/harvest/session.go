package harvest

import (
	"context"
	"log/slog"
	"sync"

	"github.com/qepting91/complaint-harvester/internal/domain"
)

// Session owns a provider for the length of one harvest.
type Session struct {
	page   domain.PageStateProvider
	logger *slog.Logger

	once     sync.Once
	closeErr error
}

// NewSession wraps a provider. Close must be deferred right after this call.
func NewSession(page domain.PageStateProvider, logger *slog.Logger) *Session {
	return &Session{page: page, logger: logger}
}

// Open navigates to the feed and waits, bounded by cfg.NavigationTimeout, for content.
func (s *Session) Open(ctx context.Context, cfg Config, targetID string) error {
	nav := cfg.navigation(targetID)

	navCtx, cancel := context.WithTimeout(ctx, cfg.NavigationTimeout)
	defer cancel()

	s.logger.Info("Navigating", "url", nav.URL)
	if err := s.page.Navigate(navCtx, nav); err != nil {
		return &domain.NavigationError{URL: nav.URL, Err: err}
	}
	return nil
}

// Close releases the provider exactly once; later calls return the first result.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.closeErr = s.page.Close()
		if s.closeErr != nil {
			s.logger.Warn("Session close failed", "err", s.closeErr)
			return
		}
		s.logger.Info("Browser closed")
	})
	return s.closeErr
}

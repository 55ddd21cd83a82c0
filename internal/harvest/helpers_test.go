package harvest_test

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/harvest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastConfig() harvest.Config {
	cfg := harvest.DefaultConfig()
	cfg.NavigationTimeout = 50 * time.Millisecond
	cfg.InitialWait = 0
	cfg.SettleInterval = 0
	return cfg
}

// card renders a feed card. Empty user or date omits that element.
func card(body, user, date string) string {
	var sb strings.Builder
	sb.WriteString(`<article class="card-v2">`)
	if user != "" {
		fmt.Fprintf(&sb, `<span class="username">%s</span>`, user)
	}
	if date != "" {
		fmt.Fprintf(&sb, `<div class="post-time"><span class="time">%s</span></div>`, date)
	}
	fmt.Fprintf(&sb, `<p class="complaint-description">%s</p>`, body)
	sb.WriteString(`</article>`)
	return sb.String()
}

func cards(prefix string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, card(fmt.Sprintf("%s complaint %d", prefix, i), "user", "16 Ocak 10:23"))
	}
	return out
}

type memWriter struct {
	mu     sync.Mutex
	writes map[string][]domain.Record
}

func newMemWriter() *memWriter {
	return &memWriter{writes: make(map[string][]domain.Record)}
}

func (w *memWriter) Write(sink string, records []domain.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes[sink] = records
	return nil
}

func (w *memWriter) get(sink string) ([]domain.Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.writes[sink]
	return r, ok
}

type failingWriter struct{ err error }

func (w failingWriter) Write(string, []domain.Record) error { return w.err }

package harvest

import (
	"strings"
	"time"

	"github.com/qepting91/complaint-harvester/internal/domain"
)

// Selectors locate a card and its fields inside the feed DOM.
type Selectors struct {
	Card     string
	Body     string
	Author   string
	PostedAt string
}

// Config tunes one controller. Each concurrent harvest may carry its own.
type Config struct {
	BaseURL       string
	ReadySelector string
	Selectors     Selectors
	Viewport      domain.Viewport
	UserAgent     string

	NavigationTimeout time.Duration
	// InitialWait lets the feed script boot before the first reveal.
	InitialWait time.Duration
	// SettleInterval is the pause after each reveal. It is a heuristic, not an acknowledgement.
	SettleInterval      time.Duration
	StagnationThreshold int
}

// DefaultConfig mirrors what works against the live complaint feed.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://www.sikayetvar.com",
		ReadySelector: "body",
		Selectors: Selectors{
			Card:     "article.card-v2",
			Body:     ".complaint-description",
			Author:   "span.username",
			PostedAt: ".post-time .time",
		},
		Viewport:            domain.Viewport{Width: 1280, Height: 900},
		UserAgent:           "Mozilla/5.0 (X11; Linux x86_64) Chrome/120 Safari/537.36",
		NavigationTimeout:   60 * time.Second,
		InitialWait:         5 * time.Second,
		SettleInterval:      3 * time.Second,
		StagnationThreshold: 3,
	}
}

// FeedURL derives the feed endpoint for a company slug.
func (c Config) FeedURL(targetID string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.Trim(targetID, "/")
}

func (c Config) navigation(targetID string) domain.Navigation {
	return domain.Navigation{
		URL:           c.FeedURL(targetID),
		ReadySelector: c.ReadySelector,
		Viewport:      c.Viewport,
		UserAgent:     c.UserAgent,
	}
}

package domain

import "context"

// SourceSite tags every post collected from the complaint feed.
const SourceSite = "sikayetvar"

// HarvestRequest describes one harvest run. It is never modified once built.
type HarvestRequest struct {
	TargetID   string
	MaxItems   int
	OutputSink string
}

// Validate checks the request before any browser work starts.
func (r HarvestRequest) Validate() error {
	switch {
	case r.TargetID == "":
		return NewRequestError("target_id", r.TargetID)
	case r.MaxItems <= 0:
		return NewRequestError("max_items", "must be positive")
	case r.OutputSink == "":
		return NewRequestError("output_sink", r.OutputSink)
	}
	return nil
}

// RawPost is a single complaint card as read from the feed
type RawPost struct {
	SourceID     int
	BodyText     string
	AuthorHandle *string
	PostedAtRaw  *string
	SourceSite   string
}

// Record converts the post into its persisted form.
func (p RawPost) Record(company string) Record {
	return Record{
		Company: company,
		Text:    p.BodyText,
		User:    p.AuthorHandle,
		Date:    p.PostedAtRaw,
	}
}

// Record is the on-disk shape consumed by the data loader. Field names are a contract.
type Record struct {
	Company string  `json:"company"`
	Text    string  `json:"text"`
	User    *string `json:"user"`
	Date    *string `json:"date"`
}

// TerminationReason explains why a harvest loop stopped.
type TerminationReason string

const (
	TargetReached    TerminationReason = "target_reached"
	Stagnation       TerminationReason = "stagnation"
	NavigationFailed TerminationReason = "navigation_failed"
	Cancelled        TerminationReason = "cancelled"
)

// HarvestResult is handed to the caller once the loop has exited.
type HarvestResult struct {
	TargetID          string
	Records           []RawPost
	TerminationReason TerminationReason
	CollectedCount    int
	// Skipped counts cards dropped for a missing body. Diagnostics only.
	Skipped int
}

// Persisted returns the on-disk form of every collected post, in collection order.
func (r *HarvestResult) Persisted() []Record {
	out := make([]Record, 0, len(r.Records))
	for _, p := range r.Records {
		out = append(out, p.Record(r.TargetID))
	}
	return out
}

// Viewport is the emulated browser window size.
type Viewport struct {
	Width  int
	Height int
}

// Navigation carries everything a provider needs to load the feed.
type Navigation struct {
	URL           string
	ReadySelector string
	Viewport      Viewport
	UserAgent     string
}

// PageStateProvider abstracts the feed page: what cards are visible and how to reveal more.
type PageStateProvider interface {
	// Navigate loads the feed and blocks until the ready selector is present or ctx ends.
	Navigate(ctx context.Context, nav Navigation) error
	// Reveal sends one "load more" input to the page.
	Reveal(ctx context.Context) error
	// VisibleCards returns the outer HTML of every card currently in the DOM, in document order.
	VisibleCards(ctx context.Context) ([]string, error)
	// Close releases the page and its browser. Safe to call more than once.
	Close() error
}

// Package analysis scores harvested complaints and turns them into a brand report.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qepting91/complaint-harvester/internal/loader"
)

var ErrNoComments = errors.New("no comments found in input")

// Pipeline runs sentiment, topic labeling, aggregation and reporting in sequence.
type Pipeline struct {
	scorer   Scorer
	labeler  *TopicLabeler
	reporter *Reporter
	logger   *slog.Logger
}

func NewPipeline(scorer Scorer, labeler *TopicLabeler, reporter *Reporter, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{scorer: scorer, labeler: labeler, reporter: reporter, logger: logger}
}

// Process scores and labels every comment. A scoring failure aborts; a labeling
// failure leaves the topic empty.
func (p *Pipeline) Process(ctx context.Context, comments []loader.Comment) ([]Processed, error) {
	p.logger.Info("Processing comments", "count", len(comments))
	out := make([]Processed, 0, len(comments))
	for _, c := range comments {
		sentiment, err := p.scorer.Score(ctx, c.Text)
		if err != nil {
			return out, fmt.Errorf("score comment %d: %w", c.ID, err)
		}
		topic, err := p.labeler.Label(ctx, c.Text)
		if err != nil {
			p.logger.Warn("Topic labeling failed", "id", c.ID, "err", err)
		}
		out = append(out, Processed{
			ID:        c.ID,
			Text:      c.Text,
			Sentiment: sentiment,
			Topic:     topic,
			Platform:  c.Platform,
			Date:      c.Date,
		})
	}
	return out, nil
}

// Run executes the whole pipeline. When only the report prose fails, the
// partial report is returned together with the error.
func (p *Pipeline) Run(ctx context.Context, ds loader.Dataset, goal string) (Report, error) {
	if len(ds.Comments) == 0 {
		return Report{}, ErrNoComments
	}

	processed, err := p.Process(ctx, ds.Comments)
	if err != nil {
		return Report{}, err
	}

	stats := Aggregate(processed)
	p.logger.Info("Aggregated", "avg_sentiment", stats.AvgSentiment, "negative_ratio", stats.NegativeRatio)

	return p.reporter.Build(ctx, ds.Brand, goal, stats)
}

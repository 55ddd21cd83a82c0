package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qepting91/complaint-harvester/internal/llm"
)

// ErrReportGeneration marks a report whose numbers are valid but whose prose is missing.
var ErrReportGeneration = errors.New("generate report")

// Report is the final output of the analysis pipeline.
type Report struct {
	BrandHealthScore  int               `json:"brand_health_score"`
	ReportMarkdown    string            `json:"report_markdown"`
	SentimentOverview SentimentOverview `json:"sentiment_overview"`
}

type SentimentOverview struct {
	AverageScore  float64 `json:"average_score"`
	NegativeRatio float64 `json:"negative_ratio"`
}

// BrandHealth maps sentiment stats onto 0..100.
func BrandHealth(avgSentiment, negativeRatio float64) int {
	score := int(100 - negativeRatio*60 + avgSentiment*40)
	return max(0, min(100, score))
}

// Reporter writes the markdown report with a language model.
type Reporter struct {
	gen llm.Generator
}

func NewReporter(gen llm.Generator) *Reporter {
	return &Reporter{gen: gen}
}

// Prompt renders the report prompt for the given stats.
func Prompt(brand, goal string, stats Stats) string {
	topics := make([]string, 0, len(stats.TopTopics))
	for _, t := range stats.TopTopics {
		topics = append(topics, fmt.Sprintf("%s (%d)", t.Topic, t.Count))
	}
	return fmt.Sprintf(reportPrompt, brand, goal, stats.AvgSentiment, stats.NegativeRatio, strings.Join(topics, ", "))
}

// Build always returns the numeric part of the report. A model failure leaves
// ReportMarkdown empty and is returned as the error.
func (r *Reporter) Build(ctx context.Context, brand, goal string, stats Stats) (Report, error) {
	report := Report{
		BrandHealthScore: BrandHealth(stats.AvgSentiment, stats.NegativeRatio),
		SentimentOverview: SentimentOverview{
			AverageScore:  round3(stats.AvgSentiment),
			NegativeRatio: round3(stats.NegativeRatio),
		},
	}
	md, err := r.gen.Generate(ctx, Prompt(brand, goal, stats))
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrReportGeneration, err)
	}
	report.ReportMarkdown = md
	return report, nil
}

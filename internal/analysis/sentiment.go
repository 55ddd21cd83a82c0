package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultHFURL          = "https://api-inference.huggingface.co"
	DefaultSentimentModel = "savasy/bert-base-turkish-sentiment-cased"
	maxSentimentRunes     = 512
)

// Sentiment is a signed score in [-1, 1] plus the model's raw label and confidence.
type Sentiment struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Scorer assigns a sentiment to a text.
type Scorer interface {
	Score(ctx context.Context, text string) (Sentiment, error)
}

var labelValues = map[string]float64{
	"negative": -1.0,
	"neutral":  0.0,
	"positive": 1.0,
	"label_0":  -1.0,
	"label_1":  0.0,
	"label_2":  1.0,
}

// NewSentiment maps a classifier label/confidence pair onto a signed score.
// Unknown labels score 0.
func NewSentiment(label string, confidence float64) Sentiment {
	label = strings.ToLower(label)
	return Sentiment{
		Label:      label,
		Score:      round3(labelValues[label] * confidence),
		Confidence: round3(confidence),
	}
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HFScorer calls a Hugging Face hosted text-classification model.
type HFScorer struct {
	client  *resty.Client
	model   string
	limiter *rate.Limiter
}

func NewHFScorer(baseURL, token, model string) *HFScorer {
	if baseURL == "" {
		baseURL = DefaultHFURL
	}
	if model == "" {
		model = DefaultSentimentModel
	}
	client := resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &HFScorer{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

func (h *HFScorer) Score(ctx context.Context, text string) (Sentiment, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return Sentiment{}, err
	}

	res, err := h.client.R().
		SetContext(ctx).
		SetRawPathParam("model", h.model).
		SetBody(map[string]string{"inputs": truncateRunes(text, maxSentimentRunes)}).
		Post("/models/{model}")
	if err != nil {
		return Sentiment{}, fmt.Errorf("sentiment request: %w", err)
	}
	if res.IsError() {
		return Sentiment{}, fmt.Errorf("sentiment status %d: %s", res.StatusCode(), res.String())
	}

	best, err := decodeTopLabel(res.Body())
	if err != nil {
		return Sentiment{}, err
	}
	return NewSentiment(best.Label, best.Score), nil
}

// decodeTopLabel accepts both [[{label,score}]] and [{label,score}] bodies.
func decodeTopLabel(body []byte) (labelScore, error) {
	var candidates []labelScore
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		candidates = nested[0]
	} else if err := json.Unmarshal(body, &candidates); err != nil {
		return labelScore{}, fmt.Errorf("decode sentiment: %w", err)
	}
	if len(candidates) == 0 {
		return labelScore{}, fmt.Errorf("decode sentiment: no labels")
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Package llm wraps the hosted language models used for topic labels and report prose.
package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ErrNoText is returned when a model answered without any text.
var ErrNoText = errors.New("model returned no text")

// Generator produces text for a prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fallback tries each generator in order and returns the first non-empty answer.
type Fallback struct {
	generators []Generator
	logger     *slog.Logger
}

func NewFallback(logger *slog.Logger, generators ...Generator) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{generators: generators, logger: logger}
}

func (f *Fallback) Name() string { return "fallback" }

func (f *Fallback) Generate(ctx context.Context, prompt string) (string, error) {
	var errs []error
	for _, g := range f.generators {
		f.logger.Info("Attempting to generate content", "model", g.Name())
		text, err := g.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if err == nil {
			err = ErrNoText
		}
		f.logger.Warn("Generation failed, switching to fallback", "model", g.Name(), "err", err)
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		errs = append(errs, errors.New("no generators configured"))
	}
	return "", errors.Join(errs...)
}

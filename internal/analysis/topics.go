package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/qepting91/complaint-harvester/internal/llm"
)

// TopicLabeler asks a language model for a single topic word per comment.
type TopicLabeler struct {
	gen llm.Generator
}

func NewTopicLabeler(gen llm.Generator) *TopicLabeler {
	return &TopicLabeler{gen: gen}
}

func (t *TopicLabeler) Label(ctx context.Context, text string) (string, error) {
	out, err := t.gen.Generate(ctx, fmt.Sprintf(topicPrompt, text))
	if err != nil {
		return "", err
	}
	return CleanTopic(out), nil
}

// CleanTopic lowercases a model answer, drops quotes and keeps the first line.
func CleanTopic(raw string) string {
	topic := strings.ToLower(strings.TrimSpace(raw))
	topic = strings.NewReplacer(`"`, "", "'", "").Replace(topic)
	if i := strings.IndexByte(topic, '\n'); i >= 0 {
		topic = topic[:i]
	}
	return strings.TrimSpace(topic)
}

package analysis

import "sort"

const (
	negativeThreshold = -0.2
	topTopicCount     = 5
)

// Processed is a comment after sentiment scoring and topic labeling.
type Processed struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
	Topic     string    `json:"topic"`
	Platform  string    `json:"platform"`
	Date      string    `json:"date"`
}

// TopicCount is one entry of the most common topics.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Stats summarizes a processed dataset.
type Stats struct {
	AvgSentiment  float64      `json:"avg_sentiment"`
	NegativeRatio float64      `json:"negative_ratio"`
	TopTopics     []TopicCount `json:"top_topics"`
	Total         int          `json:"total_comments"`
}

// Aggregate computes average sentiment, the share of clearly negative comments
// and the five most common topics. Ties keep first-seen order.
func Aggregate(processed []Processed) Stats {
	if len(processed) == 0 {
		return Stats{TopTopics: []TopicCount{}}
	}

	var sum float64
	negative := 0
	counts := make(map[string]int)
	var order []string
	for _, p := range processed {
		sum += p.Sentiment.Score
		if p.Sentiment.Score < negativeThreshold {
			negative++
		}
		if _, ok := counts[p.Topic]; !ok {
			order = append(order, p.Topic)
		}
		counts[p.Topic]++
	}

	top := make([]TopicCount, 0, len(order))
	for _, t := range order {
		top = append(top, TopicCount{Topic: t, Count: counts[t]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topTopicCount {
		top = top[:topTopicCount]
	}

	n := float64(len(processed))
	return Stats{
		AvgSentiment:  sum / n,
		NegativeRatio: float64(negative) / n,
		TopTopics:     top,
		Total:         len(processed),
	}
}

package domain

import "strings"

// Sentiment is the overall review sentiment reported by the backend.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment folds and trims a raw backend value. Unrecognized values
// map to neutral.
func ParseSentiment(raw string) Sentiment {
	switch Sentiment(strings.ToLower(strings.TrimSpace(raw))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	case SentimentNeutral:
		return SentimentNeutral
	default:
		return SentimentNeutral
	}
}

// Frequency estimates how often a pain point or feature shows up in reviews.
type Frequency string

const (
	FrequencyLow    Frequency = "low"
	FrequencyMedium Frequency = "medium"
	FrequencyHigh   Frequency = "high"
)

// ParseFrequency folds and trims a raw backend value. Unrecognized values
// map to medium.
func ParseFrequency(raw string) Frequency {
	switch Frequency(strings.ToLower(strings.TrimSpace(raw))) {
	case FrequencyLow:
		return FrequencyLow
	case FrequencyHigh:
		return FrequencyHigh
	case FrequencyMedium:
		return FrequencyMedium
	default:
		return FrequencyMedium
	}
}

// ImpactLevel grades prediction factor impact and overall confidence.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// ParseImpactLevel folds and trims a raw backend value. Unrecognized values
// map to medium.
func ParseImpactLevel(raw string) ImpactLevel {
	switch ImpactLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case ImpactLow:
		return ImpactLow
	case ImpactHigh:
		return ImpactHigh
	case ImpactMedium:
		return ImpactMedium
	default:
		return ImpactMedium
	}
}

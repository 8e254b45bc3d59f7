package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Sentiment
	}{
		{"lowercase positive", "positive", SentimentPositive},
		{"uppercase", "POSITIVE", SentimentPositive},
		{"mixed case negative", "NeGaTiVe", SentimentNegative},
		{"surrounding whitespace", "  neutral \t", SentimentNeutral},
		{"unrecognized value", "ecstatic", SentimentNeutral},
		{"empty", "", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSentiment(tt.raw))
		})
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Frequency
	}{
		{"low", "low", FrequencyLow},
		{"uppercase high", "HIGH", FrequencyHigh},
		{"whitespace medium", " medium ", FrequencyMedium},
		{"unrecognized value", "sometimes", FrequencyMedium},
		{"empty", "", FrequencyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFrequency(tt.raw))
		})
	}
}

func TestParseImpactLevel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ImpactLevel
	}{
		{"low", "low", ImpactLow},
		{"uppercase high", "High", ImpactHigh},
		{"unrecognized value", "severe", ImpactMedium},
		{"empty", "", ImpactMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseImpactLevel(tt.raw))
		})
	}
}

// Normalizing an already-normalized value must return the same value.
func TestParse_Idempotent(t *testing.T) {
	for _, s := range []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative} {
		assert.Equal(t, s, ParseSentiment(string(s)))
	}
	for _, f := range []Frequency{FrequencyLow, FrequencyMedium, FrequencyHigh} {
		assert.Equal(t, f, ParseFrequency(string(f)))
	}
	for _, i := range []ImpactLevel{ImpactLow, ImpactMedium, ImpactHigh} {
		assert.Equal(t, i, ParseImpactLevel(string(i)))
	}
}

func TestListingInput_WithDefaults(t *testing.T) {
	in := ListingInput{ProductName: "Widget", Features: "durable"}
	got := in.WithDefaults()

	assert.Equal(t, DefaultTargetAudience, got.TargetAudience)
	assert.Equal(t, DefaultBrandTone, got.BrandTone)
	assert.Equal(t, "Widget", got.ProductName)

	// Explicit values survive.
	in = ListingInput{TargetAudience: "Gamers", BrandTone: "Playful"}
	got = in.WithDefaults()
	assert.Equal(t, "Gamers", got.TargetAudience)
	assert.Equal(t, "Playful", got.BrandTone)
}

package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketpulse-client/internal/domain"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestReviewAnalysis_PartialPayload(t *testing.T) {
	raw := decode(t, `{
		"overall_sentiment": "POSITIVE",
		"top_pain_points": []
	}`)

	result := ReviewAnalysis(raw)

	assert.Equal(t, domain.SentimentPositive, result.OverallSentiment)
	assert.Equal(t, []domain.PainPoint{}, result.TopPainPoints)
	assert.Equal(t, []domain.PositiveFeature{}, result.TopPositiveFeatures)
	assert.Equal(t, []domain.CompetitiveGap{}, result.CompetitiveGaps)
	assert.Equal(t, []string{DefaultRecommendation}, result.ActionableRecommendations)
}

func TestReviewAnalysis_EmptyPayload(t *testing.T) {
	result := ReviewAnalysis(map[string]interface{}{})

	assert.Equal(t, domain.SentimentNeutral, result.OverallSentiment)
	assert.NotNil(t, result.TopPainPoints)
	assert.NotNil(t, result.TopPositiveFeatures)
	assert.NotNil(t, result.CompetitiveGaps)
	assert.Equal(t, []string{DefaultRecommendation}, result.ActionableRecommendations)
}

func TestReviewAnalysis_MissingSubFields(t *testing.T) {
	raw := decode(t, `{
		"top_pain_points": [
			{"frequency_estimate": "HIGH"},
			{"issue": "Battery drains fast", "example_review_excerpt": "Died within a day"}
		],
		"top_positive_features": [
			{"example_review_excerpt": "Setup was effortless"}
		],
		"competitive_gaps": [
			{}
		]
	}`)

	result := ReviewAnalysis(raw)

	require.Len(t, result.TopPainPoints, 2)
	assert.Equal(t, PlaceholderIssue, result.TopPainPoints[0].Issue)
	assert.Equal(t, domain.FrequencyHigh, result.TopPainPoints[0].FrequencyEstimate)
	assert.Equal(t, PlaceholderExcerpt, result.TopPainPoints[0].ExampleReviewExcerpt)
	assert.Equal(t, "Battery drains fast", result.TopPainPoints[1].Issue)
	assert.Equal(t, domain.FrequencyMedium, result.TopPainPoints[1].FrequencyEstimate)

	require.Len(t, result.TopPositiveFeatures, 1)
	assert.Equal(t, PlaceholderFeature, result.TopPositiveFeatures[0].Feature)
	assert.Equal(t, "Setup was effortless", result.TopPositiveFeatures[0].ExampleReviewExcerpt)

	require.Len(t, result.CompetitiveGaps, 1)
	assert.Equal(t, PlaceholderGap, result.CompetitiveGaps[0].Gap)
	assert.Equal(t, PlaceholderAdvantage, result.CompetitiveGaps[0].CompetitorAdvantage)
}

func TestReviewAnalysis_WrongTypes(t *testing.T) {
	raw := decode(t, `{
		"overall_sentiment": 42,
		"top_pain_points": "not a list",
		"top_positive_features": [17, {"feature": "Solid build"}],
		"actionable_recommendations": {"oops": true}
	}`)

	result := ReviewAnalysis(raw)

	assert.Equal(t, domain.SentimentNeutral, result.OverallSentiment)
	assert.Equal(t, []domain.PainPoint{}, result.TopPainPoints)
	require.Len(t, result.TopPositiveFeatures, 1)
	assert.Equal(t, "Solid build", result.TopPositiveFeatures[0].Feature)
	assert.Equal(t, []string{DefaultRecommendation}, result.ActionableRecommendations)
}

func TestReviewAnalysis_RecommendationsKeptWhenPresent(t *testing.T) {
	raw := decode(t, `{
		"actionable_recommendations": ["Improve packaging", "Offer bundles"]
	}`)

	result := ReviewAnalysis(raw)
	assert.Equal(t, []string{"Improve packaging", "Offer bundles"}, result.ActionableRecommendations)
}

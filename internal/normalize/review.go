package normalize

import "marketpulse-client/internal/domain"

// ReviewAnalysis normalizes a raw review-analysis payload. Sequence fields
// are always non-nil; actionable_recommendations defaults to a single
// placeholder entry when the backend omits it.
func ReviewAnalysis(raw map[string]interface{}) domain.ReviewAnalysisResult {
	result := domain.ReviewAnalysisResult{
		OverallSentiment:    domain.ParseSentiment(rawString(raw, "overall_sentiment")),
		TopPainPoints:       []domain.PainPoint{},
		TopPositiveFeatures: []domain.PositiveFeature{},
		CompetitiveGaps:     []domain.CompetitiveGap{},
	}

	for _, entry := range objectSeq(raw, "top_pain_points") {
		result.TopPainPoints = append(result.TopPainPoints, domain.PainPoint{
			Issue:                stringField(entry, "issue", PlaceholderIssue),
			FrequencyEstimate:    domain.ParseFrequency(rawString(entry, "frequency_estimate")),
			ExampleReviewExcerpt: stringField(entry, "example_review_excerpt", PlaceholderExcerpt),
		})
	}

	for _, entry := range objectSeq(raw, "top_positive_features") {
		result.TopPositiveFeatures = append(result.TopPositiveFeatures, domain.PositiveFeature{
			Feature:              stringField(entry, "feature", PlaceholderFeature),
			FrequencyEstimate:    domain.ParseFrequency(rawString(entry, "frequency_estimate")),
			ExampleReviewExcerpt: stringField(entry, "example_review_excerpt", PlaceholderExcerpt),
		})
	}

	for _, entry := range objectSeq(raw, "competitive_gaps") {
		result.CompetitiveGaps = append(result.CompetitiveGaps, domain.CompetitiveGap{
			Gap:                 stringField(entry, "gap", PlaceholderGap),
			CompetitorAdvantage: stringField(entry, "competitor_advantage", PlaceholderAdvantage),
		})
	}

	if recs := stringSeq(raw, "actionable_recommendations"); recs != nil {
		result.ActionableRecommendations = recs
	} else {
		result.ActionableRecommendations = []string{DefaultRecommendation}
	}

	return result
}

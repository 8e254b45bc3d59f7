package normalize

import "marketpulse-client/internal/domain"

// Prediction normalizes a raw prediction-explanation payload.
func Prediction(raw map[string]interface{}) domain.PredictionExplanationResult {
	result := domain.PredictionExplanationResult{
		PredictionSummary: stringField(raw, "prediction_summary", PlaceholderSummary),
		KeyFactors:        []domain.PredictionFactor{},
		ConfidenceLevel:   domain.ParseImpactLevel(rawString(raw, "confidence_level")),
	}

	for _, entry := range objectSeq(raw, "key_factors") {
		result.KeyFactors = append(result.KeyFactors, domain.PredictionFactor{
			Factor: stringField(entry, "factor", PlaceholderFactor),
			Impact: domain.ParseImpactLevel(rawString(entry, "impact")),
		})
	}

	if actions := stringSeq(raw, "recommended_actions"); actions != nil {
		result.RecommendedActions = actions
	} else {
		result.RecommendedActions = []string{}
	}

	return result
}

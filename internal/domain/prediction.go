package domain

// PredictionInput carries a model output plus its context for explanation.
// ModelOutput and InputFeatures are required.
type PredictionInput struct {
	ModelOutput       string `json:"modelOutput"`
	InputFeatures     string `json:"inputFeatures"`
	HistoricalContext string `json:"historicalContext"`
}

// PredictionFactor is one driver behind a prediction.
type PredictionFactor struct {
	Factor string      `json:"factor"`
	Impact ImpactLevel `json:"impact"`
}

// PredictionExplanationResult is the fully-normalized output of a prediction
// explanation. Sequence fields are never nil.
type PredictionExplanationResult struct {
	PredictionSummary  string             `json:"prediction_summary"`
	KeyFactors         []PredictionFactor `json:"key_factors"`
	RecommendedActions []string           `json:"recommended_actions"`
	ConfidenceLevel    ImpactLevel        `json:"confidence_level"`
}

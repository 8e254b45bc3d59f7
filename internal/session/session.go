// Package session tracks per-mode view state: whether a mode is showing
// its input form, a request in flight, or a completed result. Each session
// is the sole writer of its own phase and result.
package session

import (
	"context"
	"sync"

	"marketpulse-client/internal/common/errors"
	"marketpulse-client/internal/common/logger"
	"marketpulse-client/internal/common/validation"
	"marketpulse-client/internal/domain"
)

// Mode identifies one of the three analysis surfaces.
type Mode string

const (
	ModeAnalysis   Mode = "analysis"
	ModeListing    Mode = "listing"
	ModePrediction Mode = "prediction"
)

// Phase is the lifecycle position of a mode's view.
type Phase string

const (
	PhaseInput   Phase = "input"
	PhaseLoading Phase = "loading"
	PhaseResult  Phase = "result"
	// PhaseError is part of the view lifecycle but is never entered from a
	// network call: the backend client fails open, so loading always
	// resolves to a result. Validation and gating failures keep the phase
	// at input with a message.
	PhaseError Phase = "error"
)

// StatusReader provides the connection snapshot gating submissions.
type StatusReader interface {
	Status() domain.ConnectionStatus
}

// Backend is the slice of the backend client the sessions drive. Every
// operation always resolves (fail-open), so none return errors.
type Backend interface {
	AnalyzeReviews(ctx context.Context, productText, competitorText string) domain.ReviewAnalysisResult
	GenerateListing(ctx context.Context, input domain.ListingInput) domain.ListingGenerationResult
	ExplainPrediction(ctx context.Context, input domain.PredictionInput) domain.PredictionExplanationResult
}

// Session holds the view state for one mode.
type Session[T any] struct {
	mode   Mode
	status StatusReader
	logger logger.Logger

	mu           sync.Mutex
	phase        Phase
	result       *T
	errorMessage string
}

func newSession[T any](mode Mode, status StatusReader, log logger.Logger) *Session[T] {
	return &Session[T]{
		mode:   mode,
		status: status,
		logger: log.WithFields(map[string]interface{}{"mode": string(mode)}),
		phase:  PhaseInput,
	}
}

func (s *Session[T]) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Result returns the stored result, if the session holds one.
func (s *Session[T]) Result() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		var zero T
		return zero, false
	}
	return *s.result, true
}

// ErrorMessage returns the validation or connectivity message surfaced on
// the input form, if any.
func (s *Session[T]) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

// Reset forces the session back to the input phase and discards any stored
// result or message.
func (s *Session[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseInput
	s.result = nil
	s.errorMessage = ""
}

// begin gates the input → loading transition: required fields must
// validate and the backend must look connected. On rejection the session
// stays in input and keeps the message for the form to show. No network
// call is made for a rejected submission.
func (s *Session[T]) begin(result *validation.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseLoading {
		return errors.NewValidationFailedError("A request is already in progress", string(s.mode))
	}

	if !result.Valid {
		s.errorMessage = result.UserMessage()
		s.phase = PhaseInput
		s.logger.Debug("submission rejected by validation", map[string]interface{}{
			"message": s.errorMessage,
		})
		return errors.NewValidationFailedError(s.errorMessage, string(s.mode))
	}

	if !s.status.Status().Connected {
		s.errorMessage = "Backend is not connected"
		s.phase = PhaseInput
		return errors.NewNotConnectedError(string(s.mode))
	}

	s.errorMessage = ""
	s.result = nil
	s.phase = PhaseLoading
	return nil
}

// complete stores the resolved result. The backend client fails open, so
// this is the only way a loading phase ends.
func (s *Session[T]) complete(result T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
	s.phase = PhaseResult
}

// Manager owns the three per-mode sessions and tracks which one is active.
type Manager struct {
	Review     *Session[domain.ReviewAnalysisResult]
	Listing    *Session[domain.ListingGenerationResult]
	Prediction *Session[domain.PredictionExplanationResult]

	backend Backend

	mu     sync.Mutex
	active Mode
}

func NewManager(b Backend, status StatusReader, log logger.Logger) *Manager {
	return &Manager{
		Review:     newSession[domain.ReviewAnalysisResult](ModeAnalysis, status, log),
		Listing:    newSession[domain.ListingGenerationResult](ModeListing, status, log),
		Prediction: newSession[domain.PredictionExplanationResult](ModePrediction, status, log),
		backend:    b,
		active:     ModeAnalysis,
	}
}

// Active returns the currently visible mode.
func (m *Manager) Active() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Activate switches the visible mode. The newly activated mode starts a
// fresh session: phase input, no result, no message.
func (m *Manager) Activate(mode Mode) {
	m.mu.Lock()
	m.active = mode
	m.mu.Unlock()

	switch mode {
	case ModeAnalysis:
		m.Review.Reset()
	case ModeListing:
		m.Listing.Reset()
	case ModePrediction:
		m.Prediction.Reset()
	}
}

// SubmitReviewAnalysis validates and runs a review analysis through the
// analysis session.
func (m *Manager) SubmitReviewAnalysis(ctx context.Context, productText, competitorText string) (domain.ReviewAnalysisResult, error) {
	s := m.Review
	if err := s.begin(validation.ValidateReviewRequest(productText, competitorText)); err != nil {
		return domain.ReviewAnalysisResult{}, err
	}
	result := m.backend.AnalyzeReviews(ctx, productText, competitorText)
	s.complete(result)
	return result, nil
}

// SubmitListingGeneration validates and runs a listing generation through
// the listing session.
func (m *Manager) SubmitListingGeneration(ctx context.Context, input domain.ListingInput) (domain.ListingGenerationResult, error) {
	s := m.Listing
	if err := s.begin(validation.ValidateListingInput(
		input.ProductName, input.Category, input.Features, input.TargetAudience, input.BrandTone,
	)); err != nil {
		return domain.ListingGenerationResult{}, err
	}
	result := m.backend.GenerateListing(ctx, input)
	s.complete(result)
	return result, nil
}

// SubmitPredictionExplanation validates and runs a prediction explanation
// through the prediction session.
func (m *Manager) SubmitPredictionExplanation(ctx context.Context, input domain.PredictionInput) (domain.PredictionExplanationResult, error) {
	s := m.Prediction
	if err := s.begin(validation.ValidatePredictionInput(
		input.ModelOutput, input.InputFeatures, input.HistoricalContext,
	)); err != nil {
		return domain.PredictionExplanationResult{}, err
	}
	result := m.backend.ExplainPrediction(ctx, input)
	s.complete(result)
	return result, nil
}

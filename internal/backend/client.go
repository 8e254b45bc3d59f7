// Package backend implements the HTTP client for the MarketPulse inference
// backend. Analysis operations never surface failures to callers: the
// error-returning cores are wrapped by a single fail-open policy that
// substitutes a deterministic fallback result on any failure.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"marketpulse-client/internal/common/config"
	"marketpulse-client/internal/common/errors"
	"marketpulse-client/internal/common/httpclient"
	"marketpulse-client/internal/common/logger"
	"marketpulse-client/internal/common/metrics"
	"marketpulse-client/internal/common/observability"
	"marketpulse-client/internal/domain"
	"marketpulse-client/internal/normalize"
)

// Operation names used in logs and metric labels.
const (
	OpCheckHealth       = "check_health"
	OpAnalyzeReviews    = "analyze_reviews"
	OpGenerateListing   = "generate_listing"
	OpExplainPrediction = "explain_prediction"
)

// Review text caps applied before a request is sent, matching the backend's
// own prompt budget.
const (
	maxProductReviewChars    = 5000
	maxCompetitorReviewChars = 3000
)

type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     logger.Logger
	obs        *observability.Observability
}

// HealthInfo is the diagnostic payload returned by the health endpoint.
type HealthInfo struct {
	Port    int                    `json:"port"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func NewClient(cfg config.BackendConfig, log logger.Logger, obs *observability.Observability) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpclient.NewClient(cfg.RequestTimeout),
		logger:     log.WithFields(map[string]interface{}{"component": "backend"}),
		obs:        obs,
	}
}

type reviewRequest struct {
	ProductReviews    string `json:"productReviews"`
	CompetitorReviews string `json:"competitorReviews"`
}

// CheckHealth issues a single liveness probe. It does not retry; the
// connection monitor owns retry policy.
func (c *Client) CheckHealth(ctx context.Context) (HealthInfo, error) {
	raw, err := c.getJSON(ctx, OpCheckHealth, "/health")
	if err != nil {
		return HealthInfo{}, err
	}

	info := HealthInfo{Details: raw}
	if port, ok := raw["port"].(float64); ok {
		info.Port = int(port)
	}
	return info, nil
}

// AnalyzeReviews runs a review analysis, serving the fixed positive-leaning
// fallback on any failure.
func (c *Client) AnalyzeReviews(ctx context.Context, productText, competitorText string) domain.ReviewAnalysisResult {
	return failOpen(c, ctx, OpAnalyzeReviews, FallbackReviewAnalysis,
		func(ctx context.Context) (domain.ReviewAnalysisResult, error) {
			return c.analyzeReviews(ctx, productText, competitorText)
		})
}

// GenerateListing generates listing variants, serving the templated
// fallback built from the input on any failure.
func (c *Client) GenerateListing(ctx context.Context, input domain.ListingInput) domain.ListingGenerationResult {
	return failOpen(c, ctx, OpGenerateListing,
		func() domain.ListingGenerationResult { return normalize.FallbackListing(input) },
		func(ctx context.Context) (domain.ListingGenerationResult, error) {
			return c.generateListing(ctx, input)
		})
}

// ExplainPrediction explains a model prediction, serving the fixed fallback
// explanation on any failure.
func (c *Client) ExplainPrediction(ctx context.Context, input domain.PredictionInput) domain.PredictionExplanationResult {
	return failOpen(c, ctx, OpExplainPrediction, FallbackPredictionExplanation,
		func(ctx context.Context) (domain.PredictionExplanationResult, error) {
			return c.explainPrediction(ctx, input)
		})
}

// analyzeReviews is the error-returning core of AnalyzeReviews; tests
// exercise the error path through it.
func (c *Client) analyzeReviews(ctx context.Context, productText, competitorText string) (domain.ReviewAnalysisResult, error) {
	payload := reviewRequest{
		ProductReviews:    truncate(productText, maxProductReviewChars),
		CompetitorReviews: truncate(competitorText, maxCompetitorReviewChars),
	}
	raw, err := c.postJSON(ctx, OpAnalyzeReviews, "/api/analyze", payload)
	if err != nil {
		return domain.ReviewAnalysisResult{}, err
	}
	return normalize.ReviewAnalysis(raw), nil
}

func (c *Client) generateListing(ctx context.Context, input domain.ListingInput) (domain.ListingGenerationResult, error) {
	raw, err := c.postJSON(ctx, OpGenerateListing, "/api/generate-listing", input.WithDefaults())
	if err != nil {
		return domain.ListingGenerationResult{}, err
	}
	return normalize.Listing(raw, input), nil
}

func (c *Client) explainPrediction(ctx context.Context, input domain.PredictionInput) (domain.PredictionExplanationResult, error) {
	raw, err := c.postJSON(ctx, OpExplainPrediction, "/api/explain-prediction", input)
	if err != nil {
		return domain.PredictionExplanationResult{}, err
	}
	return normalize.Prediction(raw), nil
}

// failOpen is the single fail-open policy: run the error-returning call,
// record metrics, and substitute the operation's fallback on any failure.
func failOpen[T any](c *Client, ctx context.Context, operation string, fallback func() T, call func(context.Context) (T, error)) T {
	start := time.Now()
	result, err := call(ctx)
	elapsed := time.Since(start)

	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if c.obs != nil {
		c.obs.RecordDuration(ctx, operation, elapsed)
	}

	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "fallback").Inc()
		metrics.BackendFallbacksTotal.WithLabelValues(operation, string(errors.CodeOf(err))).Inc()
		if c.obs != nil {
			c.obs.RecordRequest(ctx, operation, "fallback")
		}
		c.logger.Warn("backend call failed, serving fallback result", map[string]interface{}{
			"operation": operation,
			"errorCode": string(errors.CodeOf(err)),
			"error":     err.Error(),
		})
		return fallback()
	}

	metrics.BackendRequestsTotal.WithLabelValues(operation, "success").Inc()
	if c.obs != nil {
		c.obs.RecordRequest(ctx, operation, "success")
	}
	return result
}

func (c *Client) postJSON(ctx context.Context, operation, path string, payload interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewMalformedBodyError(operation, fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.NewNetworkUnreachableError(operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.execute(ctx, operation, req)
}

func (c *Client) getJSON(ctx context.Context, operation, path string) (map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.NewNetworkUnreachableError(operation, err)
	}
	return c.execute(ctx, operation, req)
}

func (c *Client) execute(ctx context.Context, operation string, req *http.Request) (map[string]interface{}, error) {
	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	log := c.logger.WithFields(map[string]interface{}{
		"operation": operation,
		"requestId": requestID,
	})
	log.Debug("issuing backend request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, errors.NewNetworkUnreachableError(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkUnreachableError(operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewBadStatusError(operation, resp.StatusCode, string(body))
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.NewMalformedBodyError(operation, err)
	}

	log.Debug("backend request completed", map[string]interface{}{
		"status": resp.StatusCode,
	})
	return raw, nil
}

// truncate caps s at max bytes without splitting a rune at the boundary.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// Package validation checks user input against per-mode JSON Schemas before
// a request is allowed to leave the client.
package validation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const reviewRequestSchema = `{
	"type": "object",
	"required": ["productReviews"],
	"properties": {
		"productReviews": {"type": "string", "minLength": 1},
		"competitorReviews": {"type": "string"}
	}
}`

const listingInputSchema = `{
	"type": "object",
	"required": ["productName", "features"],
	"properties": {
		"productName": {"type": "string", "minLength": 1},
		"category": {"type": "string"},
		"features": {"type": "string", "minLength": 1},
		"targetAudience": {"type": "string"},
		"brandTone": {"type": "string"}
	}
}`

const predictionInputSchema = `{
	"type": "object",
	"required": ["modelOutput", "inputFeatures"],
	"properties": {
		"modelOutput": {"type": "string", "minLength": 1},
		"inputFeatures": {"type": "string", "minLength": 1},
		"historicalContext": {"type": "string"}
	}
}`

// Per-mode messages shown on the input form when required fields are
// missing. Each message is fixed and names every required field of its
// mode, whichever of them was left empty.
const (
	ReviewRequiredMessage     = "Product Reviews required"
	ListingRequiredMessage    = "Product Name and Features required"
	PredictionRequiredMessage = "Model Output and Input Features required"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Result struct {
	Valid   bool              `json:"valid"`
	Message string            `json:"message,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// UserMessage returns the mode's fixed required-field message, empty when
// the input validated.
func (r *Result) UserMessage() string {
	if r.Valid {
		return ""
	}
	return r.Message
}

// ValidateReviewRequest checks the free-text review analysis inputs.
func ValidateReviewRequest(productReviews, competitorReviews string) *Result {
	doc := map[string]interface{}{
		"productReviews":    strings.TrimSpace(productReviews),
		"competitorReviews": strings.TrimSpace(competitorReviews),
	}
	return validate(reviewRequestSchema, doc, ReviewRequiredMessage)
}

// ValidateListingInput checks the listing generation form fields.
func ValidateListingInput(productName, category, features, targetAudience, brandTone string) *Result {
	doc := map[string]interface{}{
		"productName":    strings.TrimSpace(productName),
		"category":       strings.TrimSpace(category),
		"features":       strings.TrimSpace(features),
		"targetAudience": strings.TrimSpace(targetAudience),
		"brandTone":      strings.TrimSpace(brandTone),
	}
	return validate(listingInputSchema, doc, ListingRequiredMessage)
}

// ValidatePredictionInput checks the prediction explanation form fields.
func ValidatePredictionInput(modelOutput, inputFeatures, historicalContext string) *Result {
	doc := map[string]interface{}{
		"modelOutput":       strings.TrimSpace(modelOutput),
		"inputFeatures":     strings.TrimSpace(inputFeatures),
		"historicalContext": strings.TrimSpace(historicalContext),
	}
	return validate(predictionInputSchema, doc, PredictionRequiredMessage)
}

func validate(schemaJSON string, doc map[string]interface{}, message string) *Result {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &Result{
			Valid:   false,
			Message: message,
			Errors: []ValidationError{{
				Field:   "(document)",
				Message: err.Error(),
				Code:    "SCHEMA_ERROR",
			}},
		}
	}

	if result.Valid() {
		return &Result{Valid: true}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, resErr := range result.Errors() {
		field := resErr.Field()
		// gojsonschema reports missing required fields against the root.
		if field == "(root)" {
			if prop, ok := resErr.Details()["property"].(string); ok {
				field = prop
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: resErr.Description(),
			Code:    strings.ToUpper(resErr.Type()),
		})
	}

	return &Result{Valid: false, Message: message, Errors: errs}
}

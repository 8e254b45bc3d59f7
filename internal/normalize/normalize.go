// Package normalize converts loosely-typed backend payloads into
// fully-populated domain results. Every entry point is best-effort and
// never fails: missing, wrong-cased, or wrong-typed fields are replaced by
// documented defaults so downstream consumers always see complete values.
package normalize

// Placeholder strings substituted for missing scalar sub-fields. Each field
// gets a distinct placeholder so malformed entries stay distinguishable
// from correctly parsed ones.
const (
	PlaceholderIssue     = "Unknown issue"
	PlaceholderFeature   = "Unknown feature"
	PlaceholderExcerpt   = "No example provided"
	PlaceholderGap       = "Unknown gap"
	PlaceholderAdvantage = "Unknown advantage"
	PlaceholderFactor    = "Unknown factor"
	PlaceholderSummary   = "No prediction summary available"

	// DefaultRecommendation is the single-element default for
	// actionable_recommendations, which must never normalize to empty.
	DefaultRecommendation = "No specific recommendations available"
)

// stringField extracts a string value, falling back to def when the key is
// absent or holds a non-string.
func stringField(raw map[string]interface{}, key, def string) string {
	if v, ok := raw[key].(string); ok && v != "" {
		return v
	}
	return def
}

// rawString extracts a string without defaulting; callers that need the
// raw value for enum parsing use this.
func rawString(raw map[string]interface{}, key string) string {
	v, _ := raw[key].(string)
	return v
}

// seqField extracts a sequence value, substituting an empty sequence when
// the key is absent or holds a non-sequence.
func seqField(raw map[string]interface{}, key string) []interface{} {
	if v, ok := raw[key].([]interface{}); ok {
		return v
	}
	return []interface{}{}
}

// stringSeq extracts a sequence of strings, dropping non-string elements.
// Returns nil when the key is absent or not a sequence, so callers can
// distinguish "missing" from "present but empty".
func stringSeq(raw map[string]interface{}, key string) []string {
	src, ok := raw[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(src))
	for _, item := range src {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// objectSeq extracts a sequence of objects, dropping non-object elements.
func objectSeq(raw map[string]interface{}, key string) []map[string]interface{} {
	src := seqField(raw, key)
	out := make([]map[string]interface{}, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

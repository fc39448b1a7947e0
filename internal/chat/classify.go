package chat

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// Classifier produces the model's raw text answer for a user message.
type Classifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// Classify sends the user message to the classifier and parses the model's
// output into a Query. Every failure along the way — the network call, a
// non-JSON answer, or an answer missing the "intent" or "details" key —
// downgrades to the fallback Query with empty details. The caller never
// sees a lower-level error. There are no retries and no caching.
func Classify(ctx context.Context, c Classifier, message string, log *zap.Logger) Query {
	raw, err := c.Classify(ctx, message)
	if err != nil {
		log.Warn("classifier call failed", zap.Error(err))
		return Fallback()
	}

	jsonText := extractJSON(raw)
	if jsonText == "" {
		log.Warn("classifier returned no JSON object", zap.String("raw", raw))
		return Fallback()
	}

	var parsed struct {
		Intent  *Intent  `json:"intent"`
		Details *Details `json:"details"`
	}
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		log.Warn("failed to decode classifier output", zap.Error(err))
		return Fallback()
	}
	if parsed.Intent == nil || parsed.Details == nil {
		log.Warn("classifier output is missing required keys", zap.String("raw", jsonText))
		return Fallback()
	}

	return Query{Intent: *parsed.Intent, Details: *parsed.Details}
}

// extractJSON slices out the outermost JSON object, which the model may
// have wrapped in markdown or prose.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubClassifier returns a canned raw output or error.
type stubClassifier struct {
	output string
	err    error
}

func (s *stubClassifier) Classify(ctx context.Context, message string) (string, error) {
	return s.output, s.err
}

func TestClassify(t *testing.T) {
	log := zap.NewNop()
	ctx := context.Background()

	t.Run("well-formed output", func(t *testing.T) {
		c := &stubClassifier{output: `{"intent": "menu", "details": {"outlet_name": "chatkara"}}`}
		q := Classify(ctx, c, "show me chatkara menu", log)
		assert.Equal(t, IntentMenu, q.Intent)
		assert.Equal(t, "chatkara", q.Details.OutletName)
	})

	t.Run("markdown-wrapped JSON is extracted", func(t *testing.T) {
		c := &stubClassifier{output: "```json\n{\"intent\": \"budget\", \"details\": {\"outlet_name\": \"zaikaa\", \"budget\": 100}}\n```"}
		q := Classify(ctx, c, "what can I get for 100 at zaikaa", log)
		assert.Equal(t, IntentBudget, q.Intent)
		assert.Equal(t, 100.0, q.Details.Budget)
	})

	t.Run("non-JSON output falls back", func(t *testing.T) {
		c := &stubClassifier{output: "sorry, I can't help with that"}
		q := Classify(ctx, c, "hello", log)
		assert.Equal(t, Fallback(), q)
	})

	t.Run("missing details key falls back", func(t *testing.T) {
		c := &stubClassifier{output: `{"intent": "menu"}`}
		q := Classify(ctx, c, "menu please", log)
		assert.Equal(t, Fallback(), q)
	})

	t.Run("missing intent key falls back", func(t *testing.T) {
		c := &stubClassifier{output: `{"details": {"outlet_name": "chatkara"}}`}
		q := Classify(ctx, c, "menu please", log)
		assert.Equal(t, Fallback(), q)
	})

	t.Run("transport error falls back", func(t *testing.T) {
		c := &stubClassifier{err: errors.New("connection refused")}
		q := Classify(ctx, c, "menu please", log)
		assert.Equal(t, Fallback(), q)
	})

	t.Run("structural mismatch falls back", func(t *testing.T) {
		c := &stubClassifier{output: `{"intent": "budget", "details": {"budget": "cheap"}}`}
		q := Classify(ctx, c, "something cheap", log)
		assert.Equal(t, Fallback(), q)
	})
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractJSON(`prefix {"a": 1} suffix`))
	assert.Equal(t, "", extractJSON("no braces here"))
	assert.Equal(t, "", extractJSON("} backwards {"))
}

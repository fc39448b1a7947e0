package chat

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentMenu     Intent = "menu"
	IntentBudget   Intent = "budget"
	IntentCuisine  Intent = "cuisine"
	IntentFallback Intent = "fallback"
)

// Details carries the slots extracted alongside an intent. Fields the model
// did not fill stay at their zero value.
type Details struct {
	OutletName string  `json:"outlet_name"`
	Budget     float64 `json:"budget"`
	Cuisine    string  `json:"cuisine"`
}

// Query is one classified user message. It is produced fresh per request
// and never persisted.
type Query struct {
	Intent  Intent  `json:"intent"`
	Details Details `json:"details"`
}

// Fallback is the uniform "didn't understand" classification.
func Fallback() Query {
	return Query{Intent: IntentFallback}
}

package resolver

// Result is the outcome of one turn.
type Result struct {
	// Query is the context-window text that was classified.
	Query string
	// Intent is the matched tag, or intent.FallbackTag.
	Intent string
	// Confidence is the highest class probability, also on fallback.
	Confidence float64
	// Response is the text shown to the user.
	Response string
	// Suggestions holds the example patterns offered on fallback.
	Suggestions []string
	Fallback    bool
}

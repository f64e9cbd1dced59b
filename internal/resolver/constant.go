package resolver

// Log prefixes
const (
	LogPrefixResolve = "internal.resolver.Resolve"
	LogPrefixNew     = "internal.resolver.New"
)

// Decision policy
const (
	// DefaultConfidenceThreshold is inclusive: a best probability equal to it
	// is a direct match.
	DefaultConfidenceThreshold = 0.6
	DefaultSuggestionCount     = 3
)

// Fallback messages
const (
	FallbackPrompt   = "I'm not sure I understood. Did you mean one of these?"
	FallbackRephrase = "I'm not sure I understood. Try rephrasing your question!"
	suggestionBullet = "\n- "
)

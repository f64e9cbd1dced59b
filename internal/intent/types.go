package intent

// FallbackTag is the reserved tag used when no intent is confidently matched.
// It does not have to exist in the catalog.
const FallbackTag = "fallback"

// Intent is a single catalog entry.
type Intent struct {
	Tag       string   `json:"tag" yaml:"tag"`
	Patterns  []string `json:"patterns" yaml:"patterns"`
	Responses []string `json:"responses" yaml:"responses"`
}

// document is the on-disk shape of a catalog file.
type document struct {
	Intents []Intent `json:"intents" yaml:"intents"`
}

// Summary describes an intent without its full pattern and response text.
type Summary struct {
	Tag           string `json:"tag"`
	PatternCount  int    `json:"pattern_count"`
	ResponseCount int    `json:"response_count"`
}

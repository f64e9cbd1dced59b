package chat

// RespondInput is one user utterance for a session.
type RespondInput struct {
	SessionID string
	Message   string
}

// RespondOutput is the reply to a turn.
type RespondOutput struct {
	Response    string
	Intent      string
	Confidence  float64
	Suggestions []string
	Fallback    bool
}

type StartOutput struct {
	Greeting string
}

type HistoryOutput struct {
	Messages []string
	Window   int
}

package conversation

import (
	"strings"
	"sync"
)

// Context is the utterance history of one conversation.
// The zero value is an empty context using DefaultWindow.
type Context struct {
	mu      sync.Mutex
	window  int
	history []string
}

// NewContext returns an empty context whose queries join the last window
// utterances. A non-positive window means DefaultWindow.
func NewContext(window int) *Context {
	return &Context{window: window}
}

// RecordAndBuildQuery appends utterance to the history and returns the last
// window utterances joined by single spaces, oldest first. Empty or
// whitespace-only input is recorded as is.
func (c *Context) RecordAndBuildQuery(utterance string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, utterance)
	if len(c.history) > MaxHistory {
		c.history = append(c.history[:0:0], c.history[len(c.history)-MaxHistory:]...)
	}

	w := c.window
	if w <= 0 {
		w = DefaultWindow
	}
	start := len(c.history) - w
	if start < 0 {
		start = 0
	}
	return strings.Join(c.history[start:], " ")
}

// Reset clears the history. Safe to call repeatedly.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

// History returns a copy of the retained utterances, oldest first.
func (c *Context) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.history...)
}

// Len returns the number of retained utterances.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

package resolver

import (
	"math/rand/v2"
	"sync"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithThreshold overrides DefaultConfidenceThreshold.
func WithThreshold(threshold float64) Option {
	return func(r *Resolver) { r.threshold = threshold }
}

// WithSuggestionCount overrides how many tags are considered for fallback
// suggestions.
func WithSuggestionCount(n int) Option {
	return func(r *Resolver) { r.suggestions = n }
}

// WithRand makes response and suggestion choice reproducible. The source is
// shared by concurrent turns and guarded by a mutex.
func WithRand(rnd *rand.Rand) Option {
	return func(r *Resolver) { r.rnd = &lockedRand{r: rnd} }
}

type randSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

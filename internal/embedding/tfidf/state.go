package tfidf

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("invalid tfidf state")

// State is the fitted vocabulary in column order with its IDF weights. It is
// stored next to a trained model so serving encodes text into the same
// columns the model was trained on.
type State struct {
	Terms []string  `json:"terms"`
	IDF   []float32 `json:"idf"`
}

// State returns a copy of the fitted vocabulary.
func (e *Embedder) State() (State, error) {
	if !e.fitted {
		return State{}, ErrNotFitted
	}
	terms := make([]string, len(e.idf))
	for term, i := range e.vocabulary {
		terms[i] = term
	}
	return State{Terms: terms, IDF: append([]float32(nil), e.idf...)}, nil
}

// FromState rebuilds a fitted embedder from a saved State.
func FromState(s State) (*Embedder, error) {
	if len(s.Terms) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrInvalidState)
	}
	if len(s.Terms) != len(s.IDF) {
		return nil, fmt.Errorf("%w: %d terms, %d weights", ErrInvalidState, len(s.Terms), len(s.IDF))
	}
	e := &Embedder{
		vocabulary: make(map[string]int, len(s.Terms)),
		idf:        append([]float32(nil), s.IDF...),
		fitted:     true,
	}
	for i, term := range s.Terms {
		if _, dup := e.vocabulary[term]; dup {
			return nil, fmt.Errorf("%w: duplicate term %q", ErrInvalidState, term)
		}
		e.vocabulary[term] = i
	}
	return e, nil
}

package tfidf

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"intent-chatbot/internal/embedding"
)

var (
	ErrEmptyCorpus = errors.New("empty corpus for TF-IDF fit")
	ErrNoTokens    = errors.New("no tokens found in corpus")
	ErrNotFitted   = errors.New("tfidf embedder not fitted")
)

// Embedder is a TF-IDF vectorizer over a fixed vocabulary. The vocabulary is
// sorted, so fitting the same corpus always yields the same vector layout.
// After Fit it is read-only and safe for concurrent use.
type Embedder struct {
	vocabulary map[string]int
	idf        []float32
	fitted     bool
}

var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)

// New returns an unfitted embedder.
func New() *Embedder {
	return &Embedder{vocabulary: make(map[string]int)}
}

// NewFitted returns an embedder fitted on corpus.
func NewFitted(corpus []string) (*Embedder, error) {
	e := New()
	if err := e.Fit(corpus); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Embedder) Name() string { return embedding.NameTFIDF }

// Fit builds the vocabulary and smoothed IDF weights from corpus.
func (e *Embedder) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return ErrNoTokens
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float32, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		e.idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1.0)
	}
	e.fitted = true
	return nil
}

func (e *Embedder) Dimension() int { return len(e.idf) }

// Encode returns the L2-normalised TF-IDF vector of text. Text without known
// terms yields the zero vector.
func (e *Embedder) Encode(_ context.Context, text string) ([]float32, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	vec := make([]float32, len(e.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}

	var norm float64
	for idx, count := range tf {
		v := float32(count) / float32(total) * e.idf[idx]
		vec[idx] = v
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Question words such as "what" and "where" are kept: they separate intents.
var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by",
		"with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those",
		"from", "so", "such", "into", "very", "can", "will", "just", "should", "now", "me", "my", "i", "you", "your",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

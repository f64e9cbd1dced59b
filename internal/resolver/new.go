package resolver

import (
	"context"
	"fmt"

	"intent-chatbot/internal/classifier"
	"intent-chatbot/internal/conversation"
	"intent-chatbot/internal/embedding"
	"intent-chatbot/internal/intent"
	"intent-chatbot/pkg/log"
)

// IResolver turns one utterance of a conversation into a reply.
type IResolver interface {
	Resolve(ctx context.Context, conv *conversation.Context, utterance string) (Result, error)
}

// Resolver applies the confidence policy on top of an embedder, a classifier
// and the intent catalog. All collaborators are read-only, so one Resolver
// serves every session concurrently.
type Resolver struct {
	embedder    embedding.Embedder
	classifier  classifier.Classifier
	catalog     *intent.Catalog
	l           log.Logger
	threshold   float64
	suggestions int
	rnd         randSource
}

var _ IResolver = (*Resolver)(nil)

// New wires a Resolver and checks that every label the classifier can emit,
// apart from the reserved fallback tag, has catalog responses.
func New(emb embedding.Embedder, clf classifier.Classifier, catalog *intent.Catalog, l log.Logger, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		embedder:    emb,
		classifier:  clf,
		catalog:     catalog,
		l:           l,
		threshold:   DefaultConfidenceThreshold,
		suggestions: DefaultSuggestionCount,
		rnd:         globalRand{},
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		l.Errorf(context.Background(), "%s: %v", LogPrefixNew, err)
		return nil, err
	}
	return r, nil
}

func (r *Resolver) validate() error {
	labels := r.classifier.Labels()
	if len(labels) == 0 {
		return fmt.Errorf("%w: %v", ErrConfigInconsistent, classifier.ErrNoLabels)
	}
	for _, tag := range labels {
		if tag == intent.FallbackTag {
			continue
		}
		it, ok := r.catalog.Lookup(tag)
		if !ok {
			return fmt.Errorf("%w: label %q missing from catalog", ErrConfigInconsistent, tag)
		}
		if len(it.Responses) == 0 {
			return fmt.Errorf("%w: intent %q has no responses", ErrConfigInconsistent, tag)
		}
	}
	if r.threshold < 0 || r.threshold > 1 {
		return fmt.Errorf("confidence threshold %v outside [0,1]", r.threshold)
	}
	return nil
}

// Threshold returns the configured confidence threshold.
func (r *Resolver) Threshold() float64 { return r.threshold }

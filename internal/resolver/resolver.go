package resolver

import (
	"context"
	"fmt"

	"intent-chatbot/internal/conversation"
	"intent-chatbot/internal/intent"
)

// Resolve records utterance in conv, classifies the recent window and picks
// a reply. On error the utterance stays recorded.
func (r *Resolver) Resolve(ctx context.Context, conv *conversation.Context, utterance string) (Result, error) {
	query := conv.RecordAndBuildQuery(utterance)
	res := Result{Query: query}

	vec, err := r.embedder.Encode(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: embed failed: %v", LogPrefixResolve, err)
		return res, fmt.Errorf("embed query: %w", err)
	}

	dist, err := r.classifier.PredictProba(ctx, vec)
	if err != nil {
		r.l.Errorf(ctx, "%s: classify failed: %v", LogPrefixResolve, err)
		return res, fmt.Errorf("classify query: %w", err)
	}

	best, ok := dist.Best()
	if !ok {
		r.l.Errorf(ctx, "%s: %v", LogPrefixResolve, ErrEmptyDistribution)
		return res, ErrEmptyDistribution
	}
	res.Confidence = best.Prob

	if best.Prob >= r.threshold {
		it, found := r.catalog.Lookup(best.Tag)
		switch {
		case !found && best.Tag == intent.FallbackTag:
			// reserved tag without catalog entry: fall through to suggestions
		case !found || len(it.Responses) == 0:
			err := fmt.Errorf("%w: no responses for %q", ErrConfigInconsistent, best.Tag)
			r.l.Errorf(ctx, "%s: %v", LogPrefixResolve, err)
			return res, err
		default:
			res.Intent = best.Tag
			res.Response = it.Responses[r.rnd.IntN(len(it.Responses))]
			r.l.Debugf(ctx, "%s: matched %s (%.3f)", LogPrefixResolve, best.Tag, best.Prob)
			return res, nil
		}
	}

	res.Intent = intent.FallbackTag
	res.Fallback = true
	res.Suggestions = r.Suggest(dist, r.suggestions)
	res.Response = ComposeFallback(res.Suggestions)
	r.l.Debugf(ctx, "%s: fallback (best %s %.3f, %d suggestions)", LogPrefixResolve, best.Tag, best.Prob, len(res.Suggestions))
	return res, nil
}

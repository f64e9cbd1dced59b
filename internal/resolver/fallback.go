package resolver

import (
	"strings"

	"intent-chatbot/internal/classifier"
)

// TopIntents returns up to n distinct tags ranked by probability, highest
// first. Equal probabilities keep label order.
func TopIntents(dist classifier.Distribution, n int) []string {
	if n <= 0 {
		return nil
	}
	tags := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for _, s := range dist.Ranked() {
		if _, dup := seen[s.Tag]; dup {
			continue
		}
		seen[s.Tag] = struct{}{}
		tags = append(tags, s.Tag)
		if len(tags) == n {
			break
		}
	}
	return tags
}

// Suggest picks one random example pattern for each of the top n tags.
// Tags missing from the catalog or without patterns are skipped, so fewer
// than n suggestions may come back.
func (r *Resolver) Suggest(dist classifier.Distribution, n int) []string {
	var out []string
	for _, tag := range TopIntents(dist, n) {
		it, ok := r.catalog.Lookup(tag)
		if !ok || len(it.Patterns) == 0 {
			continue
		}
		out = append(out, it.Patterns[r.rnd.IntN(len(it.Patterns))])
	}
	return out
}

// ComposeFallback renders the clarification message.
func ComposeFallback(suggestions []string) string {
	if len(suggestions) == 0 {
		return FallbackRephrase
	}
	var b strings.Builder
	b.WriteString(FallbackPrompt)
	for _, s := range suggestions {
		b.WriteString(suggestionBullet)
		b.WriteString(s)
	}
	return b.String()
}

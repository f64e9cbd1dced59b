package classifier

import (
	"math"
	"sort"
)

// Score is the probability assigned to one tag.
type Score struct {
	Tag  string  `json:"tag"`
	Prob float64 `json:"prob"`
}

// Distribution is a probability per tag, in the classifier's label order.
type Distribution []Score

// Best returns the highest-probability entry. Ties resolve to the entry that
// comes first in label order. ok is false for an empty distribution.
func (d Distribution) Best() (best Score, ok bool) {
	if len(d) == 0 {
		return Score{}, false
	}
	best = d[0]
	for _, s := range d[1:] {
		if s.Prob > best.Prob {
			best = s
		}
	}
	return best, true
}

// Ranked returns a copy sorted by probability, highest first; equal
// probabilities keep label order.
func (d Distribution) Ranked() Distribution {
	out := append(Distribution(nil), d...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Prob > out[j].Prob })
	return out
}

// Prob returns the probability of tag, or 0 when absent.
func (d Distribution) Prob(tag string) float64 {
	for _, s := range d {
		if s.Tag == tag {
			return s.Prob
		}
	}
	return 0
}

// Map returns the distribution as a tag to probability map.
func (d Distribution) Map() map[string]float64 {
	m := make(map[string]float64, len(d))
	for _, s := range d {
		m[s.Tag] = s.Prob
	}
	return m
}

// softmax turns logits into a distribution over labels.
func softmax(labels []string, logits []float64) Distribution {
	maxLogit := math.Inf(-1)
	for _, z := range logits {
		if z > maxLogit {
			maxLogit = z
		}
	}
	var sum float64
	exps := make([]float64, len(logits))
	for i, z := range logits {
		exps[i] = math.Exp(z - maxLogit)
		sum += exps[i]
	}
	out := make(Distribution, len(labels))
	for i, tag := range labels {
		out[i] = Score{Tag: tag, Prob: exps[i] / sum}
	}
	return out
}

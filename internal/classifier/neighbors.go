package classifier

import (
	"context"
	"fmt"
	"math"

	"intent-chatbot/internal/classifier/repository"
)

const (
	DefaultNeighbors   = 10
	DefaultTemperature = 0.1
)

// Neighbors scores tags by their most similar stored patterns.
//
// For every label the best cosine similarity among the k nearest patterns is
// taken (labels with no hit get -1, the cosine minimum) and the scores are
// turned into a distribution with a temperature-scaled softmax.
type Neighbors struct {
	labels      []string
	repo        repository.PatternRepository
	k           int
	temperature float64
	dim         int
}

var _ Classifier = (*Neighbors)(nil)

// NewNeighbors builds a neighbour classifier over labels. dim is the embedder
// dimension; zero skips the input length check.
func NewNeighbors(labels []string, repo repository.PatternRepository, k int, temperature float64, dim int) (*Neighbors, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	if k <= 0 {
		k = DefaultNeighbors
	}
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &Neighbors{
		labels:      append([]string(nil), labels...),
		repo:        repo,
		k:           k,
		temperature: temperature,
		dim:         dim,
	}, nil
}

func (n *Neighbors) Labels() []string { return append([]string(nil), n.labels...) }

func (n *Neighbors) PredictProba(ctx context.Context, vec []float32) (Distribution, error) {
	if n.dim > 0 && len(vec) != n.dim {
		return nil, fmt.Errorf("neighbors: got %d dims, want %d: %w", len(vec), n.dim, ErrDimensionMismatch)
	}

	hits, err := n.repo.Search(ctx, vec, n.k)
	if err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}

	best := make(map[string]float64, len(hits))
	for _, h := range hits {
		if s, ok := best[h.Tag]; !ok || h.Score > s {
			best[h.Tag] = h.Score
		}
	}

	logits := make([]float64, len(n.labels))
	for i, tag := range n.labels {
		s, ok := best[tag]
		if !ok {
			s = -1
		}
		logits[i] = math.Max(-1, s) / n.temperature
	}
	return softmax(n.labels, logits), nil
}

// Index rebuilds the repository from pre-computed pattern vectors.
func Index(ctx context.Context, repo repository.PatternRepository, dimension int, texts, tags []string, vectors [][]float32) error {
	if len(texts) != len(tags) || len(texts) != len(vectors) {
		return fmt.Errorf("index: %d texts, %d tags, %d vectors", len(texts), len(tags), len(vectors))
	}
	if err := repo.Recreate(ctx, dimension); err != nil {
		return err
	}
	patterns := make([]repository.Pattern, len(texts))
	for i := range texts {
		patterns[i] = repository.Pattern{Tag: tags[i], Text: texts[i], Vector: vectors[i]}
	}
	return repo.Upsert(ctx, patterns)
}

package classifier

import (
	"context"
	"fmt"
)

// Softmax is a multinomial logistic regression model: one weight row and bias
// per label. It is immutable after construction.
type Softmax struct {
	labels  []string
	weights [][]float32
	biases  []float32
	dim     int
}

var _ Classifier = (*Softmax)(nil)

// NewSoftmax validates the shapes and builds a model.
func NewSoftmax(labels []string, weights [][]float32, biases []float32) (*Softmax, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	if len(weights) != len(labels) || len(biases) != len(labels) {
		return nil, fmt.Errorf("softmax: %d labels, %d weight rows, %d biases", len(labels), len(weights), len(biases))
	}
	dim := len(weights[0])
	for i, row := range weights {
		if len(row) != dim {
			return nil, fmt.Errorf("softmax: weight row %d has %d dims, want %d: %w", i, len(row), dim, ErrDimensionMismatch)
		}
	}
	return &Softmax{
		labels:  append([]string(nil), labels...),
		weights: weights,
		biases:  biases,
		dim:     dim,
	}, nil
}

// Labels returns the label order fixed at training time.
func (m *Softmax) Labels() []string { return append([]string(nil), m.labels...) }

// Dimension returns the expected input vector length.
func (m *Softmax) Dimension() int { return m.dim }

// PredictProba computes softmax(W·vec + b).
func (m *Softmax) PredictProba(_ context.Context, vec []float32) (Distribution, error) {
	if len(vec) != m.dim {
		return nil, fmt.Errorf("softmax: got %d dims, want %d: %w", len(vec), m.dim, ErrDimensionMismatch)
	}
	return softmax(m.labels, m.logits(vec)), nil
}

func (m *Softmax) logits(vec []float32) []float64 {
	out := make([]float64, len(m.labels))
	for k, row := range m.weights {
		z := float64(m.biases[k])
		for i, w := range row {
			z += float64(w) * float64(vec[i])
		}
		out[k] = z
	}
	return out
}

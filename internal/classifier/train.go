package classifier

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TrainOptions controls gradient descent for Fit.
type TrainOptions struct {
	Epochs       int
	LearningRate float64
	L2           float64
}

// DefaultTrainOptions mirror an L2-regularised logistic regression run to
// convergence on small catalogs.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{Epochs: 1000, LearningRate: 0.5, L2: 1e-3}
}

var ErrNoTrainingData = errors.New("no training examples")

// Fit trains a Softmax model with full-batch gradient descent on the
// cross-entropy loss. labels fixes the output order; every entry of tags must
// be one of labels. Weights start at zero, so training is deterministic.
func Fit(vectors [][]float32, tags []string, labels []string, opt TrainOptions) (*Softmax, error) {
	if len(vectors) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(vectors) != len(tags) {
		return nil, fmt.Errorf("fit: %d vectors, %d tags", len(vectors), len(tags))
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	if opt.Epochs <= 0 {
		opt = DefaultTrainOptions()
	}

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	n, nk, dim := len(vectors), len(labels), len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("fit: empty vectors: %w", ErrDimensionMismatch)
	}

	// x holds one example per row, y the one-hot targets.
	x := mat.NewDense(n, dim, nil)
	y := mat.NewDense(n, nk, nil)
	for i, tag := range tags {
		k, ok := index[tag]
		if !ok {
			return nil, fmt.Errorf("fit: tag %q not in labels", tag)
		}
		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("fit: example %d has %d dims, want %d: %w", i, len(vectors[i]), dim, ErrDimensionMismatch)
		}
		row := x.RawRowView(i)
		for j, v := range vectors[i] {
			row[j] = float64(v)
		}
		y.Set(i, k, 1)
	}

	w := mat.NewDense(nk, dim, nil)
	b := make([]float64, nk)
	gb := make([]float64, nk)
	var probs, gw mat.Dense
	inv := 1 / float64(n)

	for epoch := 0; epoch < opt.Epochs; epoch++ {
		// probs = softmax(x·wᵀ + b), row-wise
		probs.Mul(x, w.T())
		for i := 0; i < n; i++ {
			row := probs.RawRowView(i)
			floats.Add(row, b)
			maxZ := floats.Max(row)
			var sum float64
			for k := range row {
				row[k] = math.Exp(row[k] - maxZ)
				sum += row[k]
			}
			floats.Scale(1/sum, row)
		}

		// dL/dz = probs - y
		probs.Sub(&probs, y)
		gw.Mul(probs.T(), x)
		for k := 0; k < nk; k++ {
			gb[k] = floats.Sum(mat.Col(nil, k, &probs)) * inv
		}

		// w -= lr * (gw/n + l2*w)
		gw.Scale(inv, &gw)
		gw.AddScaled(&gw, opt.L2, w)
		w.AddScaled(w, -opt.LearningRate, &gw)
		floats.AddScaled(b, -opt.LearningRate, gb)
	}

	weights := make([][]float32, nk)
	biases := make([]float32, nk)
	for k := 0; k < nk; k++ {
		weights[k] = make([]float32, dim)
		for j, v := range w.RawRowView(k) {
			weights[k][j] = float32(v)
		}
		biases[k] = float32(b[k])
	}
	return NewSoftmax(labels, weights, biases)
}

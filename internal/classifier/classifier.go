package classifier

import (
	"context"
	"errors"
)

// Names of the supported classifier back ends.
const (
	NameSoftmax   = "softmax"
	NameNeighbors = "neighbors"
)

var (
	ErrDimensionMismatch = errors.New("vector dimension does not match model")
	ErrNoLabels          = errors.New("classifier has no labels")
	ErrEmbedderMismatch  = errors.New("model was trained with a different embedder")
)

// Classifier maps an embedding to a probability per known intent tag.
//
// Labels is the canonical, fixed label order used for every tie-break.
// PredictProba returns one entry per label, in Labels order. Both must be
// safe for concurrent use and must not mutate model state.
type Classifier interface {
	Labels() []string
	PredictProba(ctx context.Context, vec []float32) (Distribution, error)
}

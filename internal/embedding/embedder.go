package embedding

import (
	"context"
	"errors"
)

// Names of the supported embedding schemes. The name is recorded in the
// model artifact so a model is never served with a different embedder.
const (
	NameTFIDF  = "tfidf"
	NameVoyage = "voyage"
)

var ErrEmptyEmbedding = errors.New("embedder returned no vector")

// Embedder converts text into a fixed-length vector.
// Encode must be deterministic and safe for concurrent use.
type Embedder interface {
	Name() string
	Dimension() int
	Encode(ctx context.Context, text string) ([]float32, error)
}

// BatchEmbedder is implemented by embedders that can encode many texts per call.
type BatchEmbedder interface {
	Embedder
	EncodeBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// EncodeAll encodes texts with a single batch call when e supports it.
func EncodeAll(ctx context.Context, e Embedder, texts []string) ([][]float32, error) {
	if b, ok := e.(BatchEmbedder); ok {
		return b.EncodeBatch(ctx, texts)
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Encode(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

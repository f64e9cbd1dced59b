package embedding

import (
	"context"
	"fmt"
	"sync/atomic"

	"intent-chatbot/pkg/voyage"
)

// voyageBatchSize is the largest batch sent in one request.
const voyageBatchSize = 128

// VoyageEmbedder encodes text through the Voyage AI embeddings API.
type VoyageEmbedder struct {
	client    voyage.IVoyage
	dimension atomic.Int64
}

// NewVoyage wraps a Voyage client. dimension may be 0, in which case it is
// learned from the first response.
func NewVoyage(client voyage.IVoyage, dimension int) *VoyageEmbedder {
	e := &VoyageEmbedder{client: client}
	e.dimension.Store(int64(dimension))
	return e
}

func (e *VoyageEmbedder) Name() string { return NameVoyage }

func (e *VoyageEmbedder) Dimension() int { return int(e.dimension.Load()) }

// Encode embeds a single text.
func (e *VoyageEmbedder) Encode(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EncodeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EncodeBatch embeds texts in chunks of voyageBatchSize.
func (e *VoyageEmbedder) EncodeBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += voyageBatchSize {
		end := min(start+voyageBatchSize, len(texts))
		vecs, err := e.client.Embed(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("voyage embed: %w", err)
		}
		for _, v := range vecs {
			if len(v) == 0 {
				return nil, ErrEmptyEmbedding
			}
			e.dimension.CompareAndSwap(0, int64(len(v)))
			out = append(out, v)
		}
	}
	return out, nil
}

package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"intent-chatbot/internal/classifier/repository"
	pkgLog "intent-chatbot/pkg/log"
	pkgQdrant "intent-chatbot/pkg/qdrant"
)

// upsertBatch bounds the request body size for large catalogs.
const upsertBatch = 256

// pointNamespace seeds deterministic point IDs; re-indexing the same
// pattern overwrites its previous point.
var pointNamespace = uuid.MustParse("3b1f6f1c-5c1e-4a4e-9f0e-7d6a2c9b8e41")

type implRepository struct {
	client         pkgQdrant.IQdrant
	collectionName string
	l              pkgLog.Logger
}

// New creates a Qdrant-backed pattern repository.
func New(client pkgQdrant.IQdrant, collectionName string, l pkgLog.Logger) repository.PatternRepository {
	return &implRepository{
		client:         client,
		collectionName: collectionName,
		l:              l,
	}
}

func (r *implRepository) Recreate(ctx context.Context, dimension int) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to check collection %s: %v", r.collectionName, err)
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		if err := r.client.DeleteCollection(ctx, r.collectionName); err != nil {
			r.l.Errorf(ctx, "qdrant repository: failed to drop collection %s: %v", r.collectionName, err)
			return fmt.Errorf("failed to drop collection: %w", err)
		}
	}

	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: dimension, Distance: pkgQdrant.DistanceCosine},
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to create collection %s: %v", r.collectionName, err)
		return fmt.Errorf("failed to create collection: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: created collection %s (dim=%d)", r.collectionName, dimension)
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, patterns []repository.Pattern) error {
	for start := 0; start < len(patterns); start += upsertBatch {
		end := min(start+upsertBatch, len(patterns))

		points := make([]pkgQdrant.Point, 0, end-start)
		for _, p := range patterns[start:end] {
			points = append(points, pkgQdrant.Point{
				ID:     pointID(p.Tag, p.Text),
				Vector: p.Vector,
				Payload: map[string]interface{}{
					"tag":     p.Tag,
					"pattern": p.Text,
				},
			})
		}

		if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			r.l.Errorf(ctx, "qdrant repository: failed to upsert points: %v", err)
			return fmt.Errorf("failed to upsert points: %w", err)
		}
	}

	r.l.Infof(ctx, "qdrant repository: upserted %d patterns", len(patterns))
	return nil
}

func (r *implRepository) Search(ctx context.Context, vector []float32, limit int) ([]repository.Hit, error) {
	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	hits := make([]repository.Hit, 0, len(resp.Result))
	for _, scored := range resp.Result {
		tag, ok := scored.Payload["tag"].(string)
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: tag missing in payload for point %v", scored.ID)
			continue
		}
		text, _ := scored.Payload["pattern"].(string)
		hits = append(hits, repository.Hit{Tag: tag, Text: text, Score: scored.Score})
	}
	return hits, nil
}

func pointID(tag, text string) string {
	return uuid.NewSHA1(pointNamespace, []byte(tag+"\x00"+text)).String()
}

package qdrant

import "context"

// IQdrant is the subset of the Qdrant REST API used by the pattern index.
type IQdrant interface {
	CollectionExists(ctx context.Context, name string) (bool, error)
	CreateCollection(ctx context.Context, req CreateCollectionRequest) error
	DeleteCollection(ctx context.Context, name string) error
	UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error)
	DeletePoints(ctx context.Context, collectionName string, ids []string) error
}

package repository

import "context"

// PatternRepository stores one vector per catalog pattern for
// nearest-neighbour lookup.
type PatternRepository interface {
	// Recreate drops any existing pattern index and creates an empty one for
	// vectors of the given dimension.
	Recreate(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, patterns []Pattern) error
	Search(ctx context.Context, vector []float32, limit int) ([]Hit, error)
}

// Pattern is one embedded catalog pattern.
type Pattern struct {
	Tag    string
	Text   string
	Vector []float32
}

// Hit is a stored pattern returned by similarity search.
type Hit struct {
	Tag   string
	Text  string
	Score float64
}

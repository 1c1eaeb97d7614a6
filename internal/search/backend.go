package search

import "context"

// Hit is one scored search result.
type Hit struct {
	ID     string
	Score  float64
	Source map[string]any
}

// Result is the decoded outcome of a query evaluation.
type Result struct {
	Total        int64
	Hits         []Hit
	Aggregations map[string]any
}

// Backend abstracts the search engine. It is expected to evaluate
// boolean/match/scripted queries, sort, collapse, aggregate and paginate;
// this layer only composes requests and maps documents.
//
// Get must return a NotFoundError when the index has no such id. Index
// performs an upsert when id is non-empty and returns the stored id,
// letting the engine assign one otherwise. The connection behind a
// Backend is process-wide and shared across all entity types.
type Backend interface {
	Get(ctx context.Context, index, id string) (map[string]any, error)
	Index(ctx context.Context, index, id string, body map[string]any) (string, error)
	Search(ctx context.Context, index string, body map[string]any) (*Result, error)
}

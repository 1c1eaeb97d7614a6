package search

import (
	"context"

	"github.com/lingoclip/lingoclip"
)

// SimilarityMapper specializes Find for vector similarity. When the
// filter carries a "vector" key, the whole equality filter is replaced by
// a distance-scored query ranking closest vectors highest. Everything
// else keeps plain mapper semantics. An explicit Sort alongside a vector
// filter is allowed but which ordering wins is the caller's problem.
type SimilarityMapper[T lingoclip.Entity] struct {
	*Mapper[T]
}

func NewSimilarityMapper[T lingoclip.Entity](backend Backend, schema lingoclip.Schema, factory func() T) *SimilarityMapper[T] {
	return &SimilarityMapper[T]{Mapper: NewMapper(backend, schema, factory)}
}

func (m *SimilarityMapper[T]) Find(ctx context.Context, opts FindOptions) (*lingoclip.Response[T], error) {
	if vec, ok := opts.Filter["vector"]; ok {
		opts.Query = L2Similarity("vector", toFloat64s(vec))
		opts.Filter = nil
	}
	return m.Mapper.Find(ctx, opts)
}

func toFloat64s(v any) []float64 {
	switch vec := v.(type) {
	case []float64:
		return vec
	case []float32:
		out := make([]float64, len(vec))
		for i, f := range vec {
			out[i] = float64(f)
		}
		return out
	case []any:
		out := make([]float64, len(vec))
		for i, f := range vec {
			out[i] = floatValue(f)
		}
		return out
	}
	return nil
}

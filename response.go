package lingoclip

// Response is the result of a Find call: the page of hydrated documents
// in backend order plus the total hit count. When the search collapsed
// results, Count is the number of distinct groups rather than raw hits.
type Response[T Entity] struct {
	Items        []T
	Count        int64
	Aggregations map[string]any
}

// First returns the first document of the page, if any.
func (r *Response[T]) First() (T, bool) {
	var zero T
	if len(r.Items) == 0 {
		return zero, false
	}
	return r.Items[0], true
}

func (r *Response[T]) Len() int { return len(r.Items) }

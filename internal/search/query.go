package search

// Query fragments are plain maps so the backend wire format stays
// assembled in one place and the raw Extra escape hatch composes freely.

// Match builds a single-field match query.
func Match(field string, value any) map[string]any {
	return map[string]any{"match": map[string]any{field: value}}
}

// QueryString builds a free-text query over the default fields.
func QueryString(query string) map[string]any {
	return map[string]any{"query_string": map[string]any{"query": query}}
}

// Bool combines clause lists into a boolean query. Nil lists are omitted.
func Bool(filter, must, mustNot []map[string]any) map[string]any {
	clauses := map[string]any{}
	if len(filter) > 0 {
		clauses["filter"] = filter
	}
	if len(must) > 0 {
		clauses["must"] = must
	}
	if len(mustNot) > 0 {
		clauses["must_not"] = mustNot
	}
	return map[string]any{"bool": clauses}
}

// ScriptFilter builds a scripted predicate clause.
func ScriptFilter(source string, params map[string]any) map[string]any {
	script := map[string]any{"source": source}
	if len(params) > 0 {
		script["params"] = params
	}
	return map[string]any{"script": map[string]any{"script": script}}
}

// DurationUnder filters documents whose end-start span is below the
// threshold, in seconds.
func DurationUnder(threshold float64) map[string]any {
	return Bool([]map[string]any{
		ScriptFilter(
			"doc['end'].value - doc['start'].value < params.threshold",
			map[string]any{"threshold": threshold},
		),
	}, nil, nil)
}

// L2Similarity scores documents by inverse L2 distance between the query
// vector and the stored vector field: 1/(1+distance). Closest vectors
// rank highest; the score approaches 1 as the distance approaches 0.
func L2Similarity(field string, vector []float64) map[string]any {
	return map[string]any{
		"function_score": map[string]any{
			"script_score": map[string]any{
				"script": map[string]any{
					"source": "1/(1+l2norm(params.queryVector,'" + field + "'))",
					"params": map[string]any{"queryVector": vector},
				},
			},
		},
	}
}

// TermsAgg buckets the most frequent values of a field.
func TermsAgg(field string, size int) map[string]any {
	return map[string]any{"terms": map[string]any{"field": field, "size": size}}
}

// CardinalityAgg counts distinct values of a field.
func CardinalityAgg(field string) map[string]any {
	return map[string]any{"cardinality": map[string]any{"field": field}}
}

package search

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/lingoclip/lingoclip"
	"github.com/lingoclip/lingoclip/internal/domain"
)

// DefaultPageSize is the find window size when none is requested.
const DefaultPageSize = 20

// FindOptions compose one query. Zero values mean "not requested";
// anything else is passed through to the backend without normalization,
// so a negative page surfaces as a backend error, not a local one.
type FindOptions struct {
	// Filter holds equality filters. On key collision it wins over Fields.
	Filter map[string]any
	// Fields holds additional equality filters, keyword-argument style.
	Fields map[string]any
	// Query is a structured query clause, combined by conjunction.
	Query map[string]any
	// QueryString is a free-text query.
	QueryString string
	// Sort is passed to the backend verbatim.
	Sort []any
	// Collapse groups hits by the named field; the response count then
	// becomes the distinct group count via a cardinality aggregation.
	Collapse string
	// Extra is a raw passthrough merged into the request body last.
	Extra map[string]any

	Size int
	Page int
}

// Mapper persists and retrieves one schema-bound entity type against the
// search backend. Documents are soft-deleted only; every Find excludes
// deleted records while Load, being direct-by-id, does not.
type Mapper[T lingoclip.Entity] struct {
	backend Backend
	schema  lingoclip.Schema
	factory func() T

	now func() time.Time
}

// NewMapper builds a mapper for the entity type produced by factory.
func NewMapper[T lingoclip.Entity](backend Backend, schema lingoclip.Schema, factory func() T) *Mapper[T] {
	return &Mapper[T]{
		backend: backend,
		schema:  schema,
		factory: factory,
		now:     time.Now,
	}
}

// Load fetches a document by identifier, bypassing the soft-delete filter.
func (m *Mapper[T]) Load(ctx context.Context, id string) (T, error) {
	var zero T
	source, err := m.backend.Get(ctx, m.schema.Index, id)
	if err != nil {
		return zero, err
	}
	return m.hydrate(id, source), nil
}

// Find evaluates a composed query and hydrates one page of documents in
// backend order.
func (m *Mapper[T]) Find(ctx context.Context, opts FindOptions) (*lingoclip.Response[T], error) {
	body := map[string]any{}

	var filter []map[string]any
	for _, key := range mergedFilterKeys(opts.Fields, opts.Filter) {
		value := opts.Fields[key]
		if v, ok := opts.Filter[key]; ok {
			value = v
		}
		if value == nil {
			continue
		}
		filter = append(filter, Match(key, value))
	}

	var must []map[string]any
	if opts.Query != nil {
		must = append(must, opts.Query)
	}
	if opts.QueryString != "" {
		must = append(must, QueryString(opts.QueryString))
	}

	mustNot := []map[string]any{Match("deleted", true)}

	body["query"] = Bool(filter, must, mustNot)

	if opts.Sort != nil {
		body["sort"] = opts.Sort
	}
	if opts.Collapse != "" {
		body["collapse"] = map[string]any{"field": opts.Collapse}
		body["aggs"] = map[string]any{"total": CardinalityAgg(opts.Collapse)}
	}

	size := opts.Size
	if size == 0 {
		size = DefaultPageSize
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	body["from"] = (page - 1) * size
	body["size"] = size

	for key, value := range opts.Extra {
		body[key] = value
	}

	result, err := m.backend.Search(ctx, m.schema.Index, body)
	if err != nil {
		return nil, err
	}

	resp := &lingoclip.Response[T]{
		Count:        result.Total,
		Aggregations: result.Aggregations,
	}
	if opts.Collapse != "" {
		resp.Count = aggValue(result.Aggregations, "total")
	}
	for _, hit := range result.Hits {
		resp.Items = append(resp.Items, m.hydrate(hit.ID, hit.Source))
	}
	return resp, nil
}

// Exists reports whether at least one non-deleted document matches the
// given field filters.
func (m *Mapper[T]) Exists(ctx context.Context, fields map[string]any) (bool, error) {
	resp, err := m.Find(ctx, FindOptions{Fields: fields})
	if err != nil {
		return false, err
	}
	_, ok := resp.First()
	return ok, nil
}

// Save validates and persists the entity. Modified is refreshed on every
// save, Created only when absent. Required fields must be present;
// declared defaults back-fill absent or nil values, both in the stored
// body and on the entity itself. The id is never part of the body: when
// already set it addresses an upsert, otherwise the backend assigns one
// and it is captured back onto the entity.
func (m *Mapper[T]) Save(ctx context.Context, entity T) error {
	meta := entity.Meta()
	meta.Modified = epochSeconds(m.now())
	if meta.Created == 0 {
		meta.Created = meta.Modified
	}

	body := entity.MarshalFields()
	for _, field := range m.schema.Fields {
		value, ok := body[field.Name]
		absent := !ok || value == nil
		if field.Required && absent {
			return domain.RequiredFieldError{Field: field.Name, Entity: m.schema.Index}
		}
		if field.Default != nil && absent {
			body[field.Name] = field.Default
		}
	}
	entity.UnmarshalFields(body)

	body["created"] = meta.Created
	body["modified"] = meta.Modified
	body["deleted"] = meta.Deleted

	id, err := m.backend.Index(ctx, m.schema.Index, meta.ID, body)
	if err != nil {
		return errors.Wrap(err, "mapper save")
	}
	meta.ID = id
	return nil
}

// Delete soft-deletes the entity: the record stays in the index, flagged
// so that every Find excludes it.
func (m *Mapper[T]) Delete(ctx context.Context, entity T) error {
	entity.Meta().Deleted = true
	return m.Save(ctx, entity)
}

// FieldList returns the entity's base and declared fields minus exclusions.
func (m *Mapper[T]) FieldList(exclude ...string) []lingoclip.Field {
	return m.schema.FieldList(exclude...)
}

// TermBucket is one value bucket from a terms aggregation.
type TermBucket struct {
	Key      any   `json:"key"`
	DocCount int64 `json:"doc_count"`
}

// TopTerms returns the most frequent distinct values of a field across
// the whole index. Unlike Find it applies no scoping at all, deleted
// records included.
func (m *Mapper[T]) TopTerms(ctx context.Context, field string, size int) ([]TermBucket, error) {
	if size == 0 {
		size = 10
	}
	body := map[string]any{
		"aggs": map[string]any{"top": TermsAgg(field, size)},
	}
	result, err := m.backend.Search(ctx, m.schema.Index, body)
	if err != nil {
		return nil, err
	}
	return termBuckets(result.Aggregations, "top"), nil
}

func (m *Mapper[T]) hydrate(id string, source map[string]any) T {
	entity := m.factory()
	meta := entity.Meta()
	meta.ID = id
	meta.Created = floatValue(source["created"])
	meta.Modified = floatValue(source["modified"])
	meta.Deleted, _ = source["deleted"].(bool)
	entity.UnmarshalFields(source)
	return entity
}

// mergedFilterKeys yields the union of both filter maps in a stable order
// so composed request bodies stay deterministic.
func mergedFilterKeys(fields, filter map[string]any) []string {
	seen := make(map[string]bool, len(fields)+len(filter))
	keys := make([]string, 0, len(fields)+len(filter))
	for key := range fields {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	for key := range filter {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func aggValue(aggs map[string]any, name string) int64 {
	agg, _ := aggs[name].(map[string]any)
	return int64(floatValue(agg["value"]))
}

func termBuckets(aggs map[string]any, name string) []TermBucket {
	agg, _ := aggs[name].(map[string]any)
	raw, _ := agg["buckets"].([]any)
	buckets := make([]TermBucket, 0, len(raw))
	for _, entry := range raw {
		b, _ := entry.(map[string]any)
		buckets = append(buckets, TermBucket{
			Key:      b["key"],
			DocCount: int64(floatValue(b["doc_count"])),
		})
	}
	return buckets
}

func floatValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

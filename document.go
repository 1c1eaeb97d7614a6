package lingoclip

import "reflect"

// Document carries the identity and audit attributes every persisted
// entity shares. The ID is assigned by the backend on first save and
// stable thereafter. Created and Modified are epoch seconds.
type Document struct {
	ID       string  `json:"id,omitempty"`
	Created  float64 `json:"created,omitempty"`
	Modified float64 `json:"modified,omitempty"`
	Deleted  bool    `json:"deleted"`
}

// Meta exposes the document metadata; embedding Document promotes it.
func (d *Document) Meta() *Document { return d }

// Entity is a schema-bound record that a mapper can persist and hydrate.
// MarshalFields serializes only the schema-declared attributes, never the
// id. UnmarshalFields copies declared attributes back, ignoring unknown
// keys and tolerating absent ones.
type Entity interface {
	Meta() *Document
	Schema() Schema
	MarshalFields() map[string]any
	UnmarshalFields(fields map[string]any)
}

// StructurallyEqual reports whether every attribute of a is present and
// equal on b. The relation is deliberately asymmetric: extra attributes
// on b do not break equality.
func StructurallyEqual(a, b Entity) bool {
	left := documentFields(a)
	right := documentFields(b)
	for key, value := range left {
		other, ok := right[key]
		if !ok || !reflect.DeepEqual(value, other) {
			return false
		}
	}
	return true
}

func documentFields(e Entity) map[string]any {
	fields := e.MarshalFields()
	out := make(map[string]any, len(fields)+4)
	for key, value := range fields {
		out[key] = value
	}
	meta := e.Meta()
	out["id"] = meta.ID
	out["created"] = meta.Created
	out["modified"] = meta.Modified
	out["deleted"] = meta.Deleted
	return out
}

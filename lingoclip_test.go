package lingoclip

import "testing"

type record struct {
	Document
	fields map[string]any
}

func (r *record) Schema() Schema                 { return Schema{Index: "records"} }
func (r *record) MarshalFields() map[string]any  { return r.fields }
func (r *record) UnmarshalFields(map[string]any) {}

func TestComposeSubtitleID(t *testing.T) {
	if got := ComposeSubtitleID("show_s01e01.srt", 42); got != "show_s01e01.srt_42" {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestParseSubtitleID(t *testing.T) {
	srtFile, index, err := ParseSubtitleID("show_s01e01.srt_42")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if srtFile != "show_s01e01.srt" || index != 42 {
		t.Fatalf("got %q %d", srtFile, index)
	}
}

func TestParseSubtitleIDRoundTrip(t *testing.T) {
	id := ComposeSubtitleID("a_b_c.srt", 7)
	srtFile, index, err := ParseSubtitleID(id)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if srtFile != "a_b_c.srt" || index != 7 {
		t.Fatalf("round trip lost information: %q %d", srtFile, index)
	}
}

func TestParseSubtitleIDMalformed(t *testing.T) {
	for _, id := range []string{"", "nounderscore", "trailing_", "_3", "file_x"} {
		if _, _, err := ParseSubtitleID(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}

func TestStructurallyEqualIsAsymmetric(t *testing.T) {
	smaller := &record{fields: map[string]any{"a": 1}}
	larger := &record{fields: map[string]any{"a": 1, "b": 2}}

	if !StructurallyEqual(smaller, larger) {
		t.Fatalf("extra attributes on the right side must not break equality")
	}
	if StructurallyEqual(larger, smaller) {
		t.Fatalf("missing attributes on the right side must break equality")
	}
}

func TestStructurallyEqualChecksMeta(t *testing.T) {
	a := &record{Document: Document{ID: "x"}, fields: map[string]any{}}
	b := &record{Document: Document{ID: "y"}, fields: map[string]any{}}

	if StructurallyEqual(a, b) {
		t.Fatalf("differing ids must not compare equal")
	}
	b.ID = "x"
	if !StructurallyEqual(a, b) {
		t.Fatalf("identical documents must compare equal")
	}
}

func TestSchemaFieldList(t *testing.T) {
	s := Schema{
		Index: "records",
		Fields: []Field{
			{Name: "title", Type: FieldString},
			{Name: "vector", Type: FieldVector},
		},
	}

	fields := s.FieldList("vector", "id")
	for _, field := range fields {
		if field.Name == "vector" || field.Name == "id" {
			t.Fatalf("excluded field %q returned", field.Name)
		}
	}
	// base fields first, declared fields after
	if fields[0].Name != "created" || fields[len(fields)-1].Name != "title" {
		t.Fatalf("unexpected field order: %+v", fields)
	}
}

func TestResponseFirst(t *testing.T) {
	empty := &Response[*record]{}
	if _, ok := empty.First(); ok {
		t.Fatalf("empty response must report no first item")
	}

	r := &record{fields: map[string]any{}}
	resp := &Response[*record]{Items: []*record{r}, Count: 5}
	first, ok := resp.First()
	if !ok || first != r {
		t.Fatalf("expected the first item back")
	}
	if resp.Len() != 1 {
		t.Fatalf("Len must count items, not the backend total")
	}
}

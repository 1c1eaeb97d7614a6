package lingoclip

// FieldType enumerates the value kinds a schema field can hold.
type FieldType string

const (
	FieldString   FieldType = "str"
	FieldBool     FieldType = "bool"
	FieldInt      FieldType = "int"
	FieldFloat    FieldType = "float"
	FieldDatetime FieldType = "datetime"
	FieldVector   FieldType = "vector"
)

// Field declares one attribute of a document schema. Declarations are
// immutable once a schema is composed.
type Field struct {
	Name     string
	Required bool
	Hidden   bool
	Default  any
	Type     FieldType
}

// Schema binds a document type to a backend index and its declared fields.
type Schema struct {
	Index  string
	Fields []Field
}

// BaseFields are the identity and audit attributes shared by every document.
var BaseFields = []Field{
	{Name: "id", Type: FieldString},
	{Name: "created", Type: FieldDatetime},
	{Name: "modified", Type: FieldDatetime},
	{Name: "deleted", Type: FieldBool, Default: false},
}

// FieldList returns the base fields followed by the schema's declared
// fields, skipping any excluded names.
func (s Schema) FieldList(exclude ...string) []Field {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	fields := make([]Field, 0, len(BaseFields)+len(s.Fields))
	for _, field := range append(append([]Field{}, BaseFields...), s.Fields...) {
		if skip[field.Name] {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

package extract

import (
	"github.com/dgallion1/wxgest/internal/doctree"
	"github.com/dgallion1/wxgest/internal/parser"
)

// Entry names one field of a SpecTable.
type Entry struct {
	Name string
	Spec FieldSpec
}

// SpecTable defines one report section. Fields are rendered in order. A
// non-empty Root makes it an array section: Root locates the list of items
// and is never rendered as a field.
type SpecTable struct {
	Name   string
	Title  string
	Root   Path
	Fields []Entry
	Markup parser.Dialect
}

// NewTable returns an empty scalar section.
func NewTable(name string) *SpecTable {
	return &SpecTable{Name: name}
}

// NewArrayTable returns an empty array section drawing items from root.
func NewArrayTable(name, root string) *SpecTable {
	return &SpecTable{Name: name, Root: ParsePath(root)}
}

// Add appends a field. Re-adding a name replaces its spec in place.
func (t *SpecTable) Add(name string, spec FieldSpec) *SpecTable {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			t.Fields[i].Spec = spec
			return t
		}
	}
	t.Fields = append(t.Fields, Entry{Name: name, Spec: spec})
	return t
}

// IsArray reports whether the table expands a list of items.
func (t *SpecTable) IsArray() bool {
	return len(t.Root) > 0
}

func (t *SpecTable) stripper() parser.Stripper {
	s, err := parser.StripperFor(t.Markup)
	if err != nil {
		return parser.HTMLStripper{}
	}
	return s
}

// Field is one rendered name/value pair.
type Field struct {
	Name  string `json:"field"`
	Value string `json:"value"`
}

// Record is an ordered set of rendered fields.
type Record []Field

// Get returns the value of the named field.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Names returns field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// RecordSequence holds one record per array item, in document order.
type RecordSequence []Record

// Build renders every field of t against root. Every field is present in the
// result; unresolved paths show up as Placeholder inside the value.
func Build(t *SpecTable, root *doctree.Node) Record {
	s := t.stripper()
	rec := make(Record, 0, len(t.Fields))
	for _, e := range t.Fields {
		v, _ := render(e.Spec, root, s)
		rec = append(rec, Field{Name: e.Name, Value: v})
	}
	return rec
}

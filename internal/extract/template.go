package extract

import (
	"strings"

	"github.com/dgallion1/wxgest/internal/doctree"
	"github.com/dgallion1/wxgest/internal/parser"
)

// Segment is one piece of a field template: literal text or a path.
type Segment struct {
	literal bool
	text    string
	path    Path
}

// Lit returns a segment emitted verbatim.
func Lit(text string) Segment {
	return Segment{literal: true, text: text}
}

// At returns a segment resolved from a slash-delimited path.
func At(expr string) Segment {
	return Segment{path: ParsePath(expr)}
}

func (s Segment) IsLiteral() bool { return s.literal }

// Text returns the literal text, or "" for a path segment.
func (s Segment) Text() string { return s.text }

// Path returns the path, or nil for a literal segment.
func (s Segment) Path() Path { return s.path }

func (s Segment) String() string {
	if s.literal {
		return "text:" + s.text
	}
	return "path:" + s.path.String()
}

// FieldSpec describes how one field's display string is assembled.
type FieldSpec []Segment

// PathSpec is the common case of a field read from a single path.
func PathSpec(expr string) FieldSpec {
	return FieldSpec{At(expr)}
}

// Template builds a FieldSpec from segments.
func Template(segs ...Segment) FieldSpec {
	return FieldSpec(segs)
}

// Render evaluates spec against root. Literals are copied as-is, paths are
// resolved, flattened and stripped of markup, and unresolved paths become
// Placeholder. A nil stripper means HTML.
func Render(spec FieldSpec, root *doctree.Node, s parser.Stripper) string {
	out, _ := render(spec, root, s)
	return out
}

// render also returns how many path segments failed to resolve.
func render(spec FieldSpec, root *doctree.Node, s parser.Stripper) (string, int) {
	if s == nil {
		s = parser.HTMLStripper{}
	}
	var buf strings.Builder
	misses := 0
	for _, seg := range spec {
		if seg.literal {
			buf.WriteString(seg.text)
			continue
		}
		n, ok := Resolve(seg.path, root)
		if !ok {
			misses++
			buf.WriteString(Placeholder)
			continue
		}
		buf.WriteString(s.Strip(ToText(n)))
	}
	return buf.String(), misses
}

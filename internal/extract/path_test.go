package extract

import (
	"testing"

	"github.com/dgallion1/wxgest/internal/doctree"
	"github.com/dgallion1/wxgest/internal/parser"
)

func mustDoc(t *testing.T, js string) *doctree.Node {
	t.Helper()
	doc, err := parser.ParseDocumentBytes([]byte(js))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func TestParsePath(t *testing.T) {
	p := ParsePath("RHRREAD/FormattedObsTime")
	if len(p) != 2 || p[0] != "RHRREAD" || p[1] != "FormattedObsTime" {
		t.Fatalf("unexpected path %#v", p)
	}
	if p.String() != "RHRREAD/FormattedObsTime" {
		t.Errorf("expected round trip, got %q", p.String())
	}
}

func TestResolve_Found(t *testing.T) {
	doc := mustDoc(t, `{"a": {"b": "X", "n": 0, "m": {"k": "v"}, "l": [1]}}`)

	n, ok := Resolve(ParsePath("a/b"), doc)
	if !ok || n.Text != "X" {
		t.Fatalf("expected X, got ok=%v n=%+v", ok, n)
	}

	n, ok = Resolve(ParsePath("a/n"), doc)
	if !ok || n.Text != "0" {
		t.Errorf("expected numeric zero to resolve, got ok=%v n=%+v", ok, n)
	}

	n, ok = Resolve(ParsePath("a/m"), doc)
	if !ok || n.Kind != doctree.Mapping {
		t.Errorf("expected structured mapping, got ok=%v", ok)
	}

	n, ok = Resolve(ParsePath("a/l"), doc)
	if !ok || n.Kind != doctree.List {
		t.Errorf("expected structured list, got ok=%v", ok)
	}
}

func TestResolve_Missing(t *testing.T) {
	doc := mustDoc(t, `{"a": {"b": "X", "null": null, "empty": "", "marker": "//", "list": [{"b": "Y"}]}}`)

	tests := []struct {
		name string
		path string
	}{
		{"absent leaf", "a/c"},
		{"absent root key", "z/b"},
		{"through scalar", "a/b/c"},
		{"through list", "a/list/b"},
		{"null", "a/null"},
		{"empty string", "a/empty"},
		{"empty marker", "a/marker"},
		{"empty expression", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n, ok := Resolve(ParsePath(tt.path), doc); ok {
				t.Errorf("expected miss, got %+v", n)
			}
		})
	}
}

func TestResolve_NilRoot(t *testing.T) {
	if _, ok := Resolve(ParsePath("a"), nil); ok {
		t.Error("expected miss on nil root")
	}
}

func TestResolve_EmptyPathMisses(t *testing.T) {
	doc := mustDoc(t, `{"a": "X"}`)
	for _, p := range []Path{nil, {}} {
		if n, ok := Resolve(p, doc); ok {
			t.Errorf("expected miss for empty path, got %+v", n)
		}
	}
}

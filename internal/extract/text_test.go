package extract

import (
	"testing"

	"github.com/dgallion1/wxgest/internal/doctree"
)

func TestToText(t *testing.T) {
	doc := mustDoc(t, `{
		"s": "plain",
		"m": {"b": "2", "a": "1"},
		"l": ["x", "y"],
		"nested": {"outer": {"inner": "v"}, "items": ["p", "q"]},
		"lm": [{"k": "v1"}, {"k": "v2"}],
		"withnull": {"a": null}
	}`)

	tests := []struct {
		key  string
		want string
	}{
		{"s", "plain"},
		{"m", "b: 2\na: 1\n"},
		{"l", "x\ny\n"},
		{"nested", "outer: inner: v\n\nitems: p\nq\n\n"},
		{"lm", "k: v1\n\nk: v2\n\n"},
		{"withnull", "a: \n"},
	}
	for _, tt := range tests {
		n, _ := doc.Get(tt.key)
		if got := ToText(n); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.key, tt.want, got)
		}
	}
}

func TestToText_Empty(t *testing.T) {
	if got := ToText(nil); got != "" {
		t.Errorf("expected empty for nil, got %q", got)
	}
	if got := ToText(doctree.NewMapping()); got != "" {
		t.Errorf("expected empty for empty mapping, got %q", got)
	}
	if got := ToText(doctree.NewScalar(Placeholder)); got != Placeholder {
		t.Errorf("expected placeholder unchanged, got %q", got)
	}
}

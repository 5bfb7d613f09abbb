package extract

import (
	"strings"

	"github.com/dgallion1/wxgest/internal/doctree"
)

const (
	// Placeholder is rendered in place of any value that cannot be resolved.
	Placeholder = "N/A"

	// EmptyMarker is the feed's own "no data" value.
	EmptyMarker = "//"
)

// Path is a sequence of mapping keys leading from a root to a value.
type Path []string

// ParsePath splits a slash-delimited path expression.
func ParsePath(expr string) Path {
	return Path(strings.Split(expr, "/"))
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

// Resolve walks p from root. It reports false when a key is absent, when a
// step lands on something other than a mapping, or when the value found is
// null, empty or EmptyMarker. Mappings and lists are returned as they are.
// An empty path names nothing and always misses.
func Resolve(p Path, root *doctree.Node) (*doctree.Node, bool) {
	if len(p) == 0 {
		return nil, false
	}
	cur := root
	for _, key := range p {
		next, ok := cur.Get(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if isEmpty(cur) {
		return nil, false
	}
	return cur, true
}

func isEmpty(n *doctree.Node) bool {
	if n == nil || n.Kind == doctree.Null {
		return true
	}
	return n.Kind == doctree.Scalar && (n.Text == "" || n.Text == EmptyMarker)
}

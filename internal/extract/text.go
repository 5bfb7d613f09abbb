package extract

import (
	"strings"

	"github.com/dgallion1/wxgest/internal/doctree"
)

// ToText flattens a resolved value into display text. Mappings become
// "key: value" lines and lists become one line per element, recursively.
func ToText(n *doctree.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case doctree.Scalar:
		return n.Text
	case doctree.Mapping:
		var buf strings.Builder
		for _, k := range n.Keys() {
			v, _ := n.Get(k)
			buf.WriteString(k)
			buf.WriteString(": ")
			buf.WriteString(ToText(v))
			buf.WriteByte('\n')
		}
		return buf.String()
	case doctree.List:
		var buf strings.Builder
		for _, item := range n.Items {
			buf.WriteString(ToText(item))
			buf.WriteByte('\n')
		}
		return buf.String()
	}
	return ""
}

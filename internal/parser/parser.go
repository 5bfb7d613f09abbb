package parser

import (
	"fmt"
	"strings"
)

// Stripper turns text that may carry embedded markup into plain text.
// Implementations never fail; malformed markup yields whatever text can be
// recovered.
type Stripper interface {
	Strip(text string) string
}

// Dialect names the markup language a section's values are written in.
type Dialect string

const (
	DialectHTML     Dialect = "html"
	DialectMarkdown Dialect = "markdown"
	DialectNone     Dialect = "none"
)

// StripperFor returns the stripper for a dialect. The empty dialect means HTML.
func StripperFor(d Dialect) (Stripper, error) {
	switch Dialect(strings.ToLower(string(d))) {
	case "", DialectHTML:
		return HTMLStripper{}, nil
	case DialectMarkdown:
		return MarkdownStripper{}, nil
	case DialectNone:
		return PlainStripper{}, nil
	default:
		return nil, fmt.Errorf("unsupported markup dialect: %s", d)
	}
}

// PlainStripper returns text unchanged.
type PlainStripper struct{}

func (PlainStripper) Strip(text string) string { return text }

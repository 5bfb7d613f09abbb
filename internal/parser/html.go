package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLStripper keeps only the text nodes of an HTML fragment, in order.
type HTMLStripper struct{}

// Strip tokenizes text and concatenates its text tokens. Tags, attributes,
// comments and doctypes are dropped and character references are decoded.
// The tokenizer does not build a tree, so whitespace around and before the
// first tag survives.
func (HTMLStripper) Strip(text string) string {
	z := html.NewTokenizer(strings.NewReader(text))
	var buf strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a truncated tag at the end of input.
			return buf.String()
		case html.TextToken:
			buf.Write(z.Text())
		}
	}
}

// StripHTML is a convenience wrapper around HTMLStripper.
func StripHTML(text string) string {
	return HTMLStripper{}.Strip(text)
}

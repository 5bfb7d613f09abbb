package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// MarkdownStripper renders markdown with goldmark and keeps the text of the
// result. Raw HTML inside the markdown is omitted by goldmark's default
// renderer.
type MarkdownStripper struct{}

func (MarkdownStripper) Strip(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return StripHTML(text)
	}
	// Block elements end with a newline in goldmark output.
	return strings.TrimRight(StripHTML(buf.String()), "\n")
}

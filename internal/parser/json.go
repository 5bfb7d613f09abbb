package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/wxgest/internal/doctree"
	"github.com/tidwall/gjson"
)

// ErrInvalidDocument is returned for input that is not a JSON object.
var ErrInvalidDocument = errors.New("invalid document")

// MaxDepth bounds object and array nesting, counting the root object as 1.
const MaxDepth = 64

// ParseDocument decodes a JSON object into a doctree, keeping key order.
func ParseDocument(r io.Reader) (*doctree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseDocumentBytes(data)
}

// ParseDocumentBytes is ParseDocument over an in-memory payload.
func ParseDocumentBytes(data []byte) (*doctree.Node, error) {
	if err := checkDepth(data, MaxDepth); err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: root must be a json object", ErrInvalidDocument)
	}
	return fromResult(res), nil
}

func fromResult(r gjson.Result) *doctree.Node {
	switch {
	case r.IsObject():
		m := doctree.NewMapping()
		r.ForEach(func(k, v gjson.Result) bool {
			m.Set(k.String(), fromResult(v))
			return true
		})
		return m
	case r.IsArray():
		l := doctree.NewList()
		r.ForEach(func(_, v gjson.Result) bool {
			l.Items = append(l.Items, fromResult(v))
			return true
		})
		return l
	}

	switch r.Type {
	case gjson.String:
		return doctree.NewScalar(r.Str)
	case gjson.Number, gjson.True, gjson.False:
		return doctree.NewScalar(r.Raw)
	}
	return doctree.NewNull()
}

// checkDepth scans data once and fails as soon as brackets outside string
// literals nest deeper than limit. Decoding rescans each container, so its
// cost grows with depth times size.
func checkDepth(data []byte, limit int) error {
	depth := 0
	inString, escaped := false, false
	for _, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > limit {
				return fmt.Errorf("%w: nesting deeper than %d", ErrInvalidDocument, limit)
			}
		case '}', ']':
			depth--
		}
	}
	return nil
}

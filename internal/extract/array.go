package extract

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgallion1/wxgest/internal/doctree"
)

// DateField is the field whose YYYYMMDD value is rewritten as an ISO date.
const DateField = "Date"

// ErrDateFormat is matched by every *FormatError.
var ErrDateFormat = errors.New("date is not a valid YYYYMMDD value")

// FormatError reports a Date field that could not be normalized.
type FormatError struct {
	Section string
	Item    int // 0-based index into the section's root list
	Value   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("section %q item %d: %s %q: %v", e.Section, e.Item, DateField, e.Value, ErrDateFormat)
}

func (e *FormatError) Unwrap() error {
	return ErrDateFormat
}

// BuildArray resolves t.Root against doc and appends one record per mapping
// item to acc. A missing root, or one that is not a list, adds nothing.
// A Date field that resolves but is not a valid YYYYMMDD date aborts the
// section: acc is returned unchanged along with a *FormatError.
func BuildArray(t *SpecTable, doc *doctree.Node, acc RecordSequence) (RecordSequence, error) {
	root, ok := Resolve(t.Root, doc)
	if !ok || root.Kind != doctree.List {
		return acc, nil
	}

	s := t.stripper()
	out := make(RecordSequence, 0, root.Len())
	for i, item := range root.Items {
		if item.Kind != doctree.Mapping {
			continue
		}
		rec := make(Record, 0, len(t.Fields))
		for _, e := range t.Fields {
			v, misses := render(e.Spec, item, s)
			if e.Name == DateField && misses == 0 {
				iso, err := NormalizeDate(v)
				if err != nil {
					return acc, &FormatError{Section: t.Name, Item: i, Value: v}
				}
				v = iso
			}
			rec = append(rec, Field{Name: e.Name, Value: v})
		}
		out = append(out, rec)
	}
	return append(acc, out...), nil
}

// NormalizeDate converts an 8-digit YYYYMMDD string to YYYY-MM-DD.
func NormalizeDate(raw string) (string, error) {
	if len(raw) != 8 {
		return "", ErrDateFormat
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", ErrDateFormat
		}
	}
	d, err := time.Parse("20060102", raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDateFormat, err)
	}
	return d.Format(time.DateOnly), nil
}

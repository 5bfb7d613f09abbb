// Package catalog loads report sections and label translations from YAML.
//
// A catalog file has two top-level keys. "sections" is an ordered mapping of
// section name to {title, root, markup, fields}; "fields" is an ordered
// mapping of field name to a field spec. A field spec is a path string, or a
// list whose items are path strings or {text: "..."} literals. "translations"
// maps a BCP 47 language tag to a field-name to label mapping.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/dgallion1/wxgest/internal/extract"
	"github.com/dgallion1/wxgest/internal/parser"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed hko.yaml
var defaultCatalog []byte

// Catalog is an immutable set of sections and translations.
type Catalog struct {
	sections []*extract.SpecTable
	byName   map[string]*extract.SpecTable

	tags    []language.Tag
	tables  []extract.TranslationTable
	matcher language.Matcher
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("catalog: embedded default is invalid: " + err.Error())
	}
	return c
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty catalog")
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, nodeErr(top, "catalog must be a mapping")
	}

	c := &Catalog{byName: make(map[string]*extract.SpecTable)}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		var err error
		switch key.Value {
		case "sections":
			err = c.parseSections(val)
		case "translations":
			err = c.parseTranslations(val)
		default:
			err = nodeErr(key, "unknown key %q", key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(c.sections) == 0 {
		return nil, fmt.Errorf("catalog defines no sections")
	}

	// English is the untranslated base language and must be first so that
	// unmatched requests fall back to it.
	supported := append([]language.Tag{language.English}, c.tags...)
	c.matcher = language.NewMatcher(supported)
	return c, nil
}

// Sections returns all sections in catalog order.
func (c *Catalog) Sections() []*extract.SpecTable {
	out := make([]*extract.SpecTable, len(c.sections))
	copy(out, c.sections)
	return out
}

// Section looks a section up by name.
func (c *Catalog) Section(name string) (*extract.SpecTable, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Names returns section names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.sections))
	for i, t := range c.sections {
		names[i] = t.Name
	}
	return names
}

// Translation picks the translation table for an Accept-Language style
// preference list. It reports false, with a nil table, when the best match
// is the untranslated base language.
func (c *Catalog) Translation(accept string) (extract.TranslationTable, language.Tag, bool) {
	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return nil, language.English, false
	}
	_, idx, conf := c.matcher.Match(desired...)
	if conf == language.No || idx == 0 {
		return nil, language.English, false
	}
	return c.tables[idx-1], c.tags[idx-1], true
}

func (c *Catalog) parseSections(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return nodeErr(n, "sections must be a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		if _, dup := c.byName[name]; dup {
			return nodeErr(n.Content[i], "duplicate section %q", name)
		}
		t, err := parseSection(name, n.Content[i+1])
		if err != nil {
			return err
		}
		c.sections = append(c.sections, t)
		c.byName[name] = t
	}
	return nil
}

func parseSection(name string, n *yaml.Node) (*extract.SpecTable, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeErr(n, "section %q must be a mapping", name)
	}
	t := extract.NewTable(name)
	var fields *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "title":
			t.Title = val.Value
		case "root":
			if val.Kind != yaml.ScalarNode || val.Value == "" {
				return nil, nodeErr(val, "section %q: root must be a non-empty path", name)
			}
			t.Root = extract.ParsePath(val.Value)
		case "markup":
			d := parser.Dialect(strings.ToLower(val.Value))
			if _, err := parser.StripperFor(d); err != nil {
				return nil, nodeErr(val, "section %q: unsupported markup %q", name, val.Value)
			}
			t.Markup = d
		case "fields":
			fields = val
		default:
			return nil, nodeErr(key, "section %q: unknown key %q", name, key.Value)
		}
	}
	if fields == nil || fields.Kind != yaml.MappingNode || len(fields.Content) == 0 {
		return nil, nodeErr(n, "section %q: fields must be a non-empty mapping", name)
	}

	seen := make(map[string]bool)
	for i := 0; i+1 < len(fields.Content); i += 2 {
		fname := fields.Content[i].Value
		if seen[fname] {
			return nil, nodeErr(fields.Content[i], "section %q: duplicate field %q", name, fname)
		}
		seen[fname] = true
		spec, err := parseFieldSpec(fields.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("section %q field %q: %w", name, fname, err)
		}
		t.Add(fname, spec)
	}
	return t, nil
}

func parseFieldSpec(n *yaml.Node) (extract.FieldSpec, error) {
	switch n.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		seg, err := parseSegment(n)
		if err != nil {
			return nil, err
		}
		return extract.Template(seg), nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return nil, nodeErr(n, "empty template")
		}
		spec := make(extract.FieldSpec, 0, len(n.Content))
		for _, item := range n.Content {
			seg, err := parseSegment(item)
			if err != nil {
				return nil, err
			}
			spec = append(spec, seg)
		}
		return spec, nil
	}
	return nil, nodeErr(n, "field spec must be a path, a {text: ...} literal or a list of them")
}

func parseSegment(n *yaml.Node) (extract.Segment, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return extract.Segment{}, nodeErr(n, "empty path")
		}
		return extract.At(n.Value), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return extract.Segment{}, nodeErr(n, "segment must have exactly one of text or path")
		}
		key, val := n.Content[0], n.Content[1]
		if val.Kind != yaml.ScalarNode {
			return extract.Segment{}, nodeErr(val, "%s must be a string", key.Value)
		}
		switch key.Value {
		case "text":
			return extract.Lit(val.Value), nil
		case "path":
			if val.Value == "" {
				return extract.Segment{}, nodeErr(val, "empty path")
			}
			return extract.At(val.Value), nil
		}
		return extract.Segment{}, nodeErr(key, "unknown segment key %q", key.Value)
	}
	return extract.Segment{}, nodeErr(n, "segment must be a path or a {text: ...} literal")
}

func (c *Catalog) parseTranslations(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return nodeErr(n, "translations must be a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		tag, err := language.Parse(key.Value)
		if err != nil {
			return nodeErr(key, "invalid language tag %q: %v", key.Value, err)
		}
		var table map[string]string
		if err := val.Decode(&table); err != nil {
			return nodeErr(val, "translations %s: %v", key.Value, err)
		}
		c.tags = append(c.tags, tag)
		c.tables = append(c.tables, extract.TranslationTable(table))
	}
	return nil
}

func nodeErr(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

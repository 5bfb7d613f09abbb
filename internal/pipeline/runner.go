package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/wxgest/internal/catalog"
	"github.com/dgallion1/wxgest/internal/doctree"
	"github.com/dgallion1/wxgest/internal/extract"
	"github.com/dgallion1/wxgest/internal/parser"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownSection is returned when a requested section is not in the catalog.
var ErrUnknownSection = errors.New("unknown section")

// Section kinds.
const (
	KindRecord = "record"
	KindArray  = "array"
)

// CatalogSource supplies the catalog for each run.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// LabeledField is a rendered field with its display label.
type LabeledField struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is one rendered report section.
type Section struct {
	Name    string           `json:"name"`
	Title   string           `json:"title,omitempty"`
	Kind    string           `json:"kind"`
	Records [][]LabeledField `json:"records"`
}

// Report is the result of one extraction run.
type Report struct {
	DocumentHash string    `json:"document_hash"`
	Language     string    `json:"language"`
	Translated   bool      `json:"translated"`
	Sections     []Section `json:"sections"`
}

// Request describes one extraction run.
type Request struct {
	Document []byte   // raw JSON
	Sections []string // empty means every catalog section
	Language string   // Accept-Language style list; empty means the default
}

// Runner parses documents and renders catalog sections against them.
type Runner struct {
	catalogs      CatalogSource
	stats         *extract.Stats
	log           *slog.Logger
	defaultLang   string
	maxConcurrent int
}

func NewRunner(src CatalogSource, stats *extract.Stats, log *slog.Logger, defaultLang string, maxConcurrent int) *Runner {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Runner{
		catalogs:      src,
		stats:         stats,
		log:           log,
		defaultLang:   defaultLang,
		maxConcurrent: maxConcurrent,
	}
}

// Stats returns the latency tracker shared with the API.
func (r *Runner) Stats() *extract.Stats {
	return r.stats
}

// Catalog returns the catalog currently in use.
func (r *Runner) Catalog() *catalog.Catalog {
	return r.catalogs.Current()
}

// Run extracts the requested sections. Sections are built concurrently, each
// into its own accumulator, and returned in request order.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	rep, err := r.run(ctx, req)
	r.stats.Record(time.Since(start), err != nil)
	if err != nil {
		r.log.Warn("extraction failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	r.log.Info("extraction complete",
		"sections", len(rep.Sections),
		"language", rep.Language,
		"document_hash", shortHash(rep.DocumentHash),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rep, nil
}

func (r *Runner) run(ctx context.Context, req Request) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := parser.ParseDocumentBytes(req.Document)
	if err != nil {
		return nil, err
	}

	// One catalog snapshot per run so a concurrent reload cannot mix versions.
	cat := r.catalogs.Current()
	tables, err := selectSections(cat, req.Sections)
	if err != nil {
		return nil, err
	}

	lang := req.Language
	if lang == "" {
		lang = r.defaultLang
	}
	translation, tag, translated := cat.Translation(lang)

	sections := make([]Section, len(tables))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrent)
	for i, t := range tables {
		i, t := i, t // per-iteration copies (go.mod targets go 1.21)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sec, err := buildSection(t, doc, translation, translated)
			if err != nil {
				return err
			}
			sections[i] = sec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		DocumentHash: HashDocument(req.Document),
		Language:     tag.String(),
		Translated:   translated,
		Sections:     sections,
	}, nil
}

func selectSections(cat *catalog.Catalog, names []string) ([]*extract.SpecTable, error) {
	if len(names) == 0 {
		return cat.Sections(), nil
	}
	tables := make([]*extract.SpecTable, 0, len(names))
	for _, name := range names {
		t, ok := cat.Section(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, name)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func buildSection(t *extract.SpecTable, doc *doctree.Node, tr extract.TranslationTable, translate bool) (Section, error) {
	sec := Section{Name: t.Name, Title: t.Title, Kind: KindRecord}

	var recs extract.RecordSequence
	if t.IsArray() {
		sec.Kind = KindArray
		var err error
		recs, err = extract.BuildArray(t, doc, recs)
		if err != nil {
			return Section{}, err
		}
	} else {
		recs = append(recs, extract.Build(t, doc))
	}

	sec.Records = make([][]LabeledField, 0, len(recs))
	for _, rec := range recs {
		fields := make([]LabeledField, 0, len(rec))
		for _, f := range rec {
			fields = append(fields, LabeledField{
				Field: f.Name,
				Label: tr.Label(f.Name, translate),
				Value: f.Value,
			})
		}
		sec.Records = append(sec.Records, fields)
	}
	return sec, nil
}

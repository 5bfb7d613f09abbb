package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/wxgest/internal/parser"
	"github.com/dgallion1/wxgest/internal/pipeline"
)

type sectionInfo struct {
	Name   string   `json:"name"`
	Title  string   `json:"title,omitempty"`
	Kind   string   `json:"kind"`
	Root   string   `json:"root,omitempty"`
	Markup string   `json:"markup"`
	Fields []string `json:"fields"`
}

// handleListSections describes the sections of the active catalog.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	tables := s.runner.Catalog().Sections()

	out := make([]sectionInfo, 0, len(tables))
	for _, t := range tables {
		info := sectionInfo{
			Name:   t.Name,
			Title:  t.Title,
			Kind:   pipeline.KindRecord,
			Markup: string(t.Markup),
			Fields: make([]string, 0, len(t.Fields)),
		}
		if info.Markup == "" {
			info.Markup = string(parser.DialectHTML)
		}
		if t.IsArray() {
			info.Kind = pipeline.KindArray
			info.Root = t.Root.String()
		}
		for _, f := range t.Fields {
			info.Fields = append(info.Fields, f.Name)
		}
		out = append(out, info)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"sections": out})
}

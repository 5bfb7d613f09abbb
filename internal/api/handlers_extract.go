package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dgallion1/wxgest/internal/extract"
	"github.com/dgallion1/wxgest/internal/parser"
	"github.com/dgallion1/wxgest/internal/pipeline"
)

// handleExtract renders catalog sections from the JSON document in the body.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxDocumentBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxDocumentBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	lang := q.Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}

	rep, err := s.runner.Run(r.Context(), pipeline.Request{
		Document: data,
		Sections: splitList(q.Get("sections")),
		Language: lang,
	})
	if err != nil {
		s.writeExtractError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Language", rep.Language)
	json.NewEncoder(w).Encode(rep)
}

func (s *Server) writeExtractError(w http.ResponseWriter, err error) {
	var fe *extract.FormatError
	switch {
	case errors.As(err, &fe):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   err.Error(),
			"section": fe.Section,
			"item":    fe.Item,
			"value":   fe.Value,
		})
	case errors.Is(err, parser.ErrInvalidDocument), errors.Is(err, pipeline.ErrUnknownSection):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		jsonError(w, "request canceled", http.StatusServiceUnavailable)
	default:
		s.log.Error("extract failed", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

// splitList parses a comma-separated query value, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// LookupHandlers serves the miRNA, prediction and pathway lookups from fixtures
type LookupHandlers struct {
	fixtures    *Fixtures
	cacheMaxAge time.Duration
}

func NewLookupHandlers(fixtures *Fixtures, cacheMaxAge time.Duration) *LookupHandlers {
	return &LookupHandlers{
		fixtures:    fixtures,
		cacheMaxAge: cacheMaxAge,
	}
}

// MiRNA handles GET requests to /api/mirna
func (h *LookupHandlers) MiRNA(w http.ResponseWriter, r *http.Request) {
	name, ok := h.requireName(w, r)
	if !ok {
		return
	}
	matches := h.fixtures.FindMiRNAs(name)
	h.writeMatches(w, r, "mirna", name, len(matches), matches)
}

// Predictions handles GET requests to /api/mirna/predictions
func (h *LookupHandlers) Predictions(w http.ResponseWriter, r *http.Request) {
	name, ok := h.requireName(w, r)
	if !ok {
		return
	}
	matches := h.fixtures.FindPredictions(name)
	h.writeMatches(w, r, "predictions", name, len(matches), matches)
}

// Pathways handles GET requests to /api/gene/pathways
func (h *LookupHandlers) Pathways(w http.ResponseWriter, r *http.Request) {
	name, ok := h.requireName(w, r)
	if !ok {
		return
	}
	matches := h.fixtures.FindPathways(name)
	h.writeMatches(w, r, "pathways", name, len(matches), matches)
}

func (h *LookupHandlers) requireName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeMessage(w, r, http.StatusBadRequest, "Query parameter 'name' is required")
		return "", false
	}
	return name, true
}

func (h *LookupHandlers) writeMatches(w http.ResponseWriter, r *http.Request, kind, name string, count int, matches interface{}) {
	zerolog.Ctx(r.Context()).Debug().
		Str("lookup", kind).
		Str("name", name).
		Int("matches", count).
		Msg("Served lookup")

	if h.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(h.cacheMaxAge.Seconds())))
		w.Header().Set("Vary", "Authorization")
	}
	writeJSON(w, r, http.StatusOK, matches)
}

package main

import (
	"net/http"
)

// HealthHandler handles GET requests to /api/health
func HealthHandler(fixtures *Fixtures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, Response{
			Message: "ok",
			Data: map[string]int{
				"mirnas":      len(fixtures.MiRNAs),
				"predictions": len(fixtures.Predictions),
				"pathways":    len(fixtures.Pathways),
			},
		})
	}
}

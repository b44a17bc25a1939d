package main

import (
	"net/http"

	"goji.io"
	"goji.io/pat"
)

// RegisterRoutes mounts the API under /api
func RegisterRoutes(mux *goji.Mux, c *Config) {
	lookups := NewLookupHandlers(&c.Fixtures, c.CacheMaxAge)
	auth := RequireToken(c.Auth.Tokens)

	mux.Handle(pat.Get("/api/health"), HealthHandler(&c.Fixtures))
	mux.Handle(pat.Get("/api/mirna"), auth(http.HandlerFunc(lookups.MiRNA)))
	mux.Handle(pat.Get("/api/mirna/predictions"), auth(http.HandlerFunc(lookups.Predictions)))
	mux.Handle(pat.Get("/api/gene/pathways"), auth(http.HandlerFunc(lookups.Pathways)))
}

package main

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// RequireToken rejects requests whose bearer token is not in tokens.
// With no tokens configured every request passes.
func RequireToken(tokens []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(tokens) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				zerolog.Ctx(r.Context()).Debug().Msg("Rejected request without bearer token")
				writeMessage(w, r, http.StatusUnauthorized, "Missing bearer token")
				return
			}

			for _, t := range tokens {
				if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			zerolog.Ctx(r.Context()).Debug().Msg("Rejected request with unknown bearer token")
			writeMessage(w, r, http.StatusUnauthorized, "Invalid bearer token")
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

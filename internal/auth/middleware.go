package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenParser is the part of TokenIssuer the middleware needs.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// Middleware rejects requests without a valid bearer token and stores the user ID on the context.
func Middleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				unauthorized(w, "Missing auth token")
				return
			}
			id, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				unauthorized(w, "Invalid auth token")
				return
			}
			next.ServeHTTP(w, SetUserID(r, id))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// This package provides helpers for setting and getting the authenticated user ID on a request context.
// The bearer middleware fills it in, handlers read it back.

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

const UserIDKey = contextKey("user_id")

// SetUserID returns a new request with the user's ID added to its context.
func SetUserID(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(WithUserID(r.Context(), id))
}

// WithUserID returns ctx carrying the user's ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves the user's ID from the context.
func GetUserID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok {
		// Only happens when a route is registered outside the auth middleware.
		return uuid.Nil, fmt.Errorf("no user ID in context")
	}
	return id, nil
}

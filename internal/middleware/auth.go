package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"storyhub/internal/auth"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// subjectKey is the context key for the authenticated user's ID.
	subjectKey contextKey = "subject"
)

// RequireAuth verifies the Authorization bearer token and stores the
// resolved user ID in the request context. Requests without a valid token
// get 401 and never reach the handler. Verification is stateless — no
// store lookup per request.
func RequireAuth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "Authorization header required.")
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				unauthorized(w, "Bearer token required.")
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				unauthorized(w, "Invalid or expired token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), userID)))
		})
	}
}

// WithSubject returns a context carrying the authenticated user's ID.
func WithSubject(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, subjectKey, userID)
}

// SubjectFromCtx extracts the authenticated user's ID from the request
// context. Returns uuid.Nil and false outside a RequireAuth chain.
func SubjectFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(subjectKey).(uuid.UUID)
	return id, ok
}

// unauthorized writes a 401 JSON error in the API's message envelope.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

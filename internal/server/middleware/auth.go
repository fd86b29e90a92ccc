// Package middleware guards the recruiter-facing API routes. Every
// job-posting and matching endpoint runs behind RequireRecruiter, which
// resolves the bearer token to a recruiter before the handler sees the
// request.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenResolver resolves a bearer token to the recruiter it was issued to.
type TokenResolver interface {
	RecruiterFromToken(token string) (uuid.UUID, error)
}

type contextKey struct{}

var recruiterKey contextKey

// ErrNoRecruiter reports a request that never passed through RequireRecruiter.
var ErrNoRecruiter = errors.New("no recruiter on request context")

// RequireRecruiter rejects requests that do not carry a valid bearer token
// and stores the resolved recruiter ID on the request context.
func RequireRecruiter(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing or malformed bearer token")
				return
			}

			recruiterID, err := resolver.RecruiterFromToken(token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRecruiter(r.Context(), recruiterID)))
		})
	}
}

// bearerToken pulls the token out of the Authorization header. The scheme
// comparison is case-insensitive per RFC 9110.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WithRecruiter returns a context carrying the recruiter ID. Exported so
// handler tests can build authenticated requests without minting tokens.
func WithRecruiter(ctx context.Context, recruiterID uuid.UUID) context.Context {
	return context.WithValue(ctx, recruiterKey, recruiterID)
}

// RecruiterID returns the recruiter the request was authenticated as.
func RecruiterID(r *http.Request) (uuid.UUID, error) {
	recruiterID, ok := r.Context().Value(recruiterKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoRecruiter
	}
	return recruiterID, nil
}

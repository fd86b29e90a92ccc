package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	recruiterID uuid.UUID
	err         error
}

func (s *stubResolver) RecruiterFromToken(token string) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return s.recruiterID, nil
}

func TestRequireRecruiter_ValidToken(t *testing.T) {
	recruiterID := uuid.New()
	resolver := &stubResolver{recruiterID: recruiterID}

	var gotRecruiterID uuid.UUID
	handler := RequireRecruiter(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := RecruiterID(r)
		require.NoError(t, err)
		gotRecruiterID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/job-postings", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, recruiterID, gotRecruiterID)
}

func TestRequireRecruiter_CaseInsensitiveBearer(t *testing.T) {
	resolver := &stubResolver{recruiterID: uuid.New()}
	handler := RequireRecruiter(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/job-postings", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRecruiter_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		resolver *stubResolver
	}{
		{
			name:     "missing header",
			header:   "",
			resolver: &stubResolver{recruiterID: uuid.New()},
		},
		{
			name:     "scheme without token",
			header:   "Bearer",
			resolver: &stubResolver{recruiterID: uuid.New()},
		},
		{
			name:     "wrong scheme",
			header:   "Basic dXNlcjpwYXNz",
			resolver: &stubResolver{recruiterID: uuid.New()},
		},
		{
			name:     "invalid token",
			header:   "Bearer expired-token",
			resolver: &stubResolver{err: fmt.Errorf("token expired")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireRecruiter(tt.resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest("GET", "/job-postings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Bearer realm="api"`, rec.Header().Get("WWW-Authenticate"))
			assert.False(t, called, "handler should not run for rejected request")

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRecruiterID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/job-postings", nil)
	_, err := RecruiterID(req)
	require.ErrorIs(t, err, ErrNoRecruiter)
}

func TestRecruiterID_FromContext(t *testing.T) {
	recruiterID := uuid.New()
	req := httptest.NewRequest("GET", "/job-postings", nil)
	req = req.WithContext(WithRecruiter(req.Context(), recruiterID))

	got, err := RecruiterID(req)
	require.NoError(t, err)
	assert.Equal(t, recruiterID, got)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		userID     string
		wantStatus int
	}{
		{name: "valid user id", userID: "42", wantStatus: http.StatusOK},
		{name: "missing header", userID: "", wantStatus: http.StatusUnauthorized},
		{name: "non-numeric", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "zero", userID: "0", wantStatus: http.StatusUnauthorized},
		{name: "negative", userID: "-5", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotOK = 0, false

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, gotOK)
				assert.Equal(t, int64(42), gotUserID)
			} else {
				assert.False(t, gotOK)
			}
		})
	}
}

func TestRequestID_Generated(t *testing.T) {
	var gotID string

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_PreservesClientID(t *testing.T) {
	var gotID string

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "client-req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-req-1", gotID)
	assert.Equal(t, "client-req-1", rec.Header().Get(HeaderRequestID))
}

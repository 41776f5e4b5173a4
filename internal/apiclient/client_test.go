package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email != "alice@example.com" || req.Password != "secret123" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{ //nolint:errcheck
				Error:   "invalid_credentials",
				Message: "incorrect email or password",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"token": "issued-token",
			"user":  map[string]any{"id": "user-1", "name": "Alice", "email": "alice@example.com"},
		})
	})

	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}

		if r.Header.Get("Authorization") != "Bearer issued-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(errorResponse{ //nolint:errcheck
				Error:   "unauthorized",
				Message: "authentication required",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"user": map[string]any{"id": "user-1", "name": "Alice", "email": "alice@example.com"},
		})
	})

	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"message": "logged out successfully"}) //nolint:errcheck
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestLogin_Success(t *testing.T) {
	server := newStubServer(t)
	t.Setenv("METAWORK_API_ENDPOINT", server.URL)

	client := New()

	result, err := client.Login(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "issued-token", result.Token)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := newStubServer(t)
	t.Setenv("METAWORK_API_ENDPOINT", server.URL)

	client := New()

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid_credentials", apiErr.Code)
	assert.Equal(t, "incorrect email or password", apiErr.Message, "message should be UI-ready")
}

func TestCurrentUser_RoundTrip(t *testing.T) {
	server := newStubServer(t)
	t.Setenv("METAWORK_API_ENDPOINT", server.URL)

	client := New()

	user, err := client.CurrentUser(context.Background(), "issued-token")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestCurrentUser_Unauthorized(t *testing.T) {
	server := newStubServer(t)
	t.Setenv("METAWORK_API_ENDPOINT", server.URL)

	client := New()

	_, err := client.CurrentUser(context.Background(), "expired-token")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestLogout(t *testing.T) {
	server := newStubServer(t)
	t.Setenv("METAWORK_API_ENDPOINT", server.URL)

	client := New()

	assert.NoError(t, client.Logout(context.Background()))
}

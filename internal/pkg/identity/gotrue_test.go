package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoTrueClient_CurrentUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "resolves user",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/user", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				assert.Equal(t, "anon-key", r.Header.Get("apikey"))
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]string{"id": userID.String(), "email": "ala@uni.test"})
			},
		},
		{
			name: "rejected token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name: "server failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: apperrors.ErrRemoteFailure,
		},
		{
			name: "response without id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"email":"ala@uni.test"}`))
			},
			wantErr: apperrors.ErrRemoteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewGoTrueClient(Config{BaseURL: server.URL, APIKey: "anon-key"})
			user, err := client.CurrentUser(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &User{ID: userID, Email: "ala@uni.test"}, user)
		})
	}
}

func TestGoTrueClient_SignOut(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewGoTrueClient(Config{BaseURL: server.URL + "/"})
	require.NoError(t, client.SignOut(context.Background(), "tok"))
	assert.True(t, called)
}

func TestGoTrueClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewGoTrueClient(Config{BaseURL: url})
	err := client.SignOut(context.Background(), "tok")
	assert.ErrorIs(t, err, apperrors.ErrRemoteFailure)
}

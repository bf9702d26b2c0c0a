package jmapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/auth"
	"github.com/jakartamandarin/console/core/session"
	"github.com/jakartamandarin/console/services/jmapi"
	testutil "github.com/jakartamandarin/console/tests"
)

func newClient(t *testing.T, baseURL string, tokenFn func() string) *jmapi.Client {
	return jmapi.NewClient(&jmapi.Options{
		BaseURL:   baseURL,
		Timeout:   5 * time.Second,
		Logger:    testutil.NewLogger(t),
		TokenFunc: tokenFn,
	})
}

func TestClient_requestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]struct{}{})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func() string { return "mock-token-1" })
	_, err := c.ListUsers(context.Background(), false)
	assert.NoError(t, err)

	assert.Equal(t, "Bearer mock-token-1", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	_, err = uuid.Parse(got.Get("X-Request-ID"))
	assert.NoError(t, err, "every request carries a request id")
}

func TestClient_anonymousRequestsOmitAuthorization(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]struct{}{})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func() string { return "" })
	_, err := c.ListUsers(context.Background(), false)
	assert.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_rejection(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "string message",
			status:      http.StatusConflict,
			body:        `{"message": "email already registered"}`,
			wantMessage: "email already registered",
		},
		{
			name:        "message list",
			status:      http.StatusBadRequest,
			body:        `{"message": ["name should not be empty", "role must be valid"]}`,
			wantMessage: "name should not be empty; role must be valid",
		},
		{
			name:   "no usable body",
			status: http.StatusBadGateway,
			body:   "upstream exploded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newClient(t, srv.URL, nil)
			_, err := c.ListUsers(context.Background(), false)

			var rerr *core.RemoteError
			assert.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.status, rerr.StatusCode)
			assert.Equal(t, tt.wantMessage, rerr.Message)
		})
	}
}

func TestRemoteProvider(t *testing.T) {
	ctx := context.Background()
	creds := auth.Credentials{Email: "admin@jakartamandarin.com", Password: "admin123"}

	t.Run("success yields the backend session", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.AddAccount(creds.Email, creds.Password, session.User{ID: "1", Email: creds.Email, Role: "admin"})
		p := jmapi.NewRemoteProvider(backend.NewClient(nil))

		sess, err := p.Authenticate(ctx, creds)
		assert.NoError(t, err)
		assert.Equal(t, "backend-token-"+creds.Email, sess.Token)
		assert.Equal(t, "admin", sess.User.Role)
	})

	t.Run("401 maps to invalid credentials", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		p := jmapi.NewRemoteProvider(backend.NewClient(nil))

		_, err := p.Authenticate(ctx, creds)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("5xx passes through as unavailability", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.FailRoute("POST /auth/login", "")
		p := jmapi.NewRemoteProvider(backend.NewClient(nil))

		_, err := p.Authenticate(ctx, creds)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unreachable backend passes through", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		p := jmapi.NewRemoteProvider(backend.NewClient(nil))
		backend.Close()

		_, err := p.Authenticate(ctx, creds)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestClient_ResetFlow(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewBackend(t)
	c := backend.NewClient(nil)

	ack, err := c.RequestPasswordReset(ctx, "admin@jakartamandarin.com")
	assert.NoError(t, err)
	assert.Equal(t, "reset link sent to admin@jakartamandarin.com", ack.Message)
	assert.Equal(t, "reset-admin@jakartamandarin.com", ack.ResetToken)

	assert.NoError(t, c.ResetPassword(ctx, ack.ResetToken, "n3w-password"))
	assert.Equal(t, 1, backend.Hits("POST /auth/reset-password"))
}

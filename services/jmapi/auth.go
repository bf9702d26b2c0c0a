package jmapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/auth"
	"github.com/jakartamandarin/console/core/session"
)

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

var errNoToken = errors.New("login response missing access_token")

// Login resolves credentials against POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	payload := map[string]string{"email": email, "password": password}
	var res loginResponse
	if err := c.post(ctx, "/auth/login", payload, &res); err != nil {
		return session.Session{}, err
	}
	if res.AccessToken == "" {
		return session.Session{}, errNoToken
	}
	return session.Session{Token: res.AccessToken, User: res.User}, nil
}

// RequestPasswordReset starts the forgot-password flow.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (auth.ResetAck, error) {
	var ack auth.ResetAck
	err := c.post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &ack)
	return ack, err
}

// ResetPassword submits a new password with its reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	payload := map[string]string{"token": token, "password": password}
	return c.post(ctx, "/auth/reset-password", payload, nil)
}

// remoteProvider adapts the login call to the credential provider
// chain. It is the authoritative first link: the static fallback only
// runs when this one rejects or cannot be reached.
type remoteProvider struct {
	c *Client
}

var _ auth.Provider = (*remoteProvider)(nil)

func NewRemoteProvider(c *Client) auth.Provider {
	return &remoteProvider{c: c}
}

func (p *remoteProvider) Name() string { return "remote" }

func (p *remoteProvider) Authenticate(ctx context.Context, creds auth.Credentials) (session.Session, error) {
	sess, err := p.c.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		var rerr *core.RemoteError
		if errors.As(err, &rerr) && rerr.StatusCode >= http.StatusBadRequest && rerr.StatusCode < http.StatusInternalServerError {
			return session.Session{}, auth.ErrInvalidCredentials
		}
		return session.Session{}, err
	}
	return sess, nil
}

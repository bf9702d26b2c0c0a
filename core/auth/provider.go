// Package auth implements login as an ordered chain of credential
// providers: the remote backend first, the static allow-list as
// fallback. First success wins; the remote path is authoritative
// whenever it is reachable and accepts the credentials.
package auth

import (
	"context"
	"errors"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/session"
)

var (
	// ErrInvalidCredentials is a provider-level rejection; the chain
	// moves on to the next provider.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLoginRejected is the single terminal login failure. The text
	// is identical whether the backend said no or was unreachable with
	// no allow-list match, so the outcome reveals neither credential
	// validity nor backend availability.
	ErrLoginRejected = errors.New("wrong email or password")
)

// Credentials is the login form. Email is trimmed but never lowered:
// the allow-list match is exact and case-sensitive.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email)
	return core.TranslateError(core.Validate.Struct(c))
}

// Provider resolves credentials into a session. Any error other than
// ErrInvalidCredentials means the provider itself was unavailable;
// the chain treats both the same apart from logging.
type Provider interface {
	Name() string
	Authenticate(ctx context.Context, creds Credentials) (session.Session, error)
}

type Authenticator struct {
	providers []Provider
	sessions  *session.Service
	log       core.Logger
}

func NewAuthenticator(sessions *session.Service, log core.Logger, providers ...Provider) *Authenticator {
	return &Authenticator{providers: providers, sessions: sessions, log: log}
}

// Login walks the provider chain with the submitted credentials. On
// the first success the session is persisted (the only writer of the
// durable keys) and returned. When every provider fails the caller
// gets ErrLoginRejected, never the underlying cause.
func (a *Authenticator) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	if err := creds.Validate(); err != nil {
		return session.Session{}, err
	}

	for _, p := range a.providers {
		sess, err := p.Authenticate(ctx, creds)
		if err != nil {
			if !errors.Is(err, ErrInvalidCredentials) {
				a.log.Warn("auth provider unavailable: "+p.Name(), err)
			}
			continue
		}
		if err := a.sessions.Establish(sess); err != nil {
			return session.Session{}, err
		}
		a.log.Info("login via provider: " + p.Name())
		return sess, nil
	}
	return session.Session{}, ErrLoginRejected
}

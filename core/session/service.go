package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"

	"github.com/jakartamandarin/console/core"
)

var NowFunc = time.Now // mockable

type Service struct {
	store Store
	log   core.Logger
}

func NewService(store Store, log core.Logger) *Service {
	return &Service{store: store, log: log}
}

// Establish persists a freshly authenticated session. Only the login
// success paths call this.
func (svc *Service) Establish(s Session) error {
	if err := svc.store.Save(s); err != nil {
		return errors.Wrap(err, "persisting session")
	}
	return nil
}

// Current returns the stored session, applying the expiry check on
// read: a real token whose exp claim has passed counts as no session
// and is cleared. Synthesized fallback tokens are opaque strings and
// never expire client-side.
func (svc *Service) Current() (Session, error) {
	s, err := svc.store.Load()
	if err != nil {
		return Session{}, err
	}
	if s.Token == "" {
		return Session{}, ErrNoSession
	}
	if tokenExpired(s.Token, NowFunc()) {
		svc.log.Info("stored session expired, clearing", s.User.Email)
		if err := svc.store.Clear(); err != nil {
			svc.log.Warn("clearing expired session", err)
		}
		return Session{}, ErrNoSession
	}
	return s, nil
}

// Token returns the current bearer token, or "" when no valid session
// exists. Used by the API gateway to decorate outgoing requests.
func (svc *Service) Token() string {
	s, err := svc.Current()
	if err != nil {
		return ""
	}
	return s.Token
}

// Logout tears the session down explicitly, clearing both stored keys.
func (svc *Service) Logout() error {
	if err := svc.store.Clear(); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}

// tokenExpired inspects the exp claim without verifying the signature;
// the client holds no signing key and only needs the timestamp.
func tokenExpired(token string, now time.Time) bool {
	claims := new(jwt.RegisteredClaims)
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false // opaque token (e.g. login fallback), no expiry
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(now)
}

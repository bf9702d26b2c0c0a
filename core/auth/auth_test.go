package auth_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/auth"
	"github.com/jakartamandarin/console/core/session"
	testutil "github.com/jakartamandarin/console/tests"
)

// stubProvider scripts one link of the chain and records whether it
// was consulted.
type stubProvider struct {
	name  string
	sess  session.Session
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Authenticate(context.Context, auth.Credentials) (session.Session, error) {
	p.calls++
	return p.sess, p.err
}

func setup(t *testing.T, providers ...auth.Provider) (*auth.Authenticator, *testutil.MemStore) {
	store := testutil.NewMemStore()
	sessions := session.NewService(store, testutil.NewLogger(t))
	return auth.NewAuthenticator(sessions, testutil.NewLogger(t), providers...), store
}

func staticEntries() []auth.Entry {
	return []auth.Entry{
		{ID: 1, Name: "Admin Utama", Email: "admin@jakartamandarin.com", Password: "admin123", Role: "admin"},
		{ID: 4, Name: "Siswa Demo", Email: "student@jakartamandarin.com", Password: "student123", Role: "student", Hidden: true},
	}
}

func TestAuthenticator_Login(t *testing.T) {
	ctx := context.Background()
	creds := auth.Credentials{Email: "admin@jakartamandarin.com", Password: "admin123"}

	t.Run("remote success is authoritative", func(t *testing.T) {
		remote := &stubProvider{name: "remote", sess: session.Session{
			Token: "backend-token",
			User:  session.User{ID: "10", Email: creds.Email, Role: "admin"},
		}}
		fallback := &stubProvider{name: "static", err: auth.ErrInvalidCredentials}
		a, store := setup(t, remote, fallback)

		sess, err := a.Login(ctx, creds)
		assert.NoError(t, err)
		assert.Equal(t, "backend-token", sess.Token)
		assert.Equal(t, 0, fallback.calls, "fallback must not be consulted on remote success")

		stored, err := store.Load()
		assert.NoError(t, err)
		assert.Equal(t, sess, stored)
	})

	t.Run("remote rejection falls back to the allow-list", func(t *testing.T) {
		remote := &stubProvider{name: "remote", err: auth.ErrInvalidCredentials} // backend said 401
		a, store := setup(t, remote, auth.NewStaticProvider(staticEntries()...))

		sess, err := a.Login(ctx, creds)
		assert.NoError(t, err)
		assert.Equal(t, "mock-token-1", sess.Token)
		assert.Equal(t, "admin", sess.User.Role)
		assert.Equal(t, 1, remote.calls)

		stored, err := store.Load()
		assert.NoError(t, err)
		assert.Equal(t, sess, stored)
	})

	t.Run("remote unreachable falls back the same way", func(t *testing.T) {
		remote := &stubProvider{name: "remote", err: errors.New("connection refused")}
		a, _ := setup(t, remote, auth.NewStaticProvider(staticEntries()...))

		sess, err := a.Login(ctx, creds)
		assert.NoError(t, err)
		assert.Equal(t, "mock-token-1", sess.Token)
	})

	t.Run("allow-list match is exact and case-sensitive", func(t *testing.T) {
		remote := &stubProvider{name: "remote", err: auth.ErrInvalidCredentials}
		a, _ := setup(t, remote, auth.NewStaticProvider(staticEntries()...))

		_, err := a.Login(ctx, auth.Credentials{Email: "Admin@jakartamandarin.com", Password: "admin123"})
		assert.ErrorIs(t, err, auth.ErrLoginRejected)

		_, err = a.Login(ctx, auth.Credentials{Email: creds.Email, Password: "ADMIN123"})
		assert.ErrorIs(t, err, auth.ErrLoginRejected)
	})

	// the rejection must not reveal whether the backend said no or was
	// simply unreachable
	t.Run("identical rejection for both failure paths", func(t *testing.T) {
		noMatch := auth.Credentials{Email: "nobody@jakartamandarin.com", Password: "lol"}

		rejected, _ := setup(t, &stubProvider{name: "remote", err: auth.ErrInvalidCredentials}, auth.NewStaticProvider(staticEntries()...))
		_, errRejected := rejected.Login(ctx, noMatch)

		unreachable, _ := setup(t, &stubProvider{name: "remote", err: errors.New("dial tcp: no route to host")}, auth.NewStaticProvider(staticEntries()...))
		_, errUnreachable := unreachable.Login(ctx, noMatch)

		assert.ErrorIs(t, errRejected, auth.ErrLoginRejected)
		assert.ErrorIs(t, errUnreachable, auth.ErrLoginRejected)
		assert.Equal(t, errRejected.Error(), errUnreachable.Error())
	})

	t.Run("invalid form never reaches a provider", func(t *testing.T) {
		remote := &stubProvider{name: "remote"}
		a, _ := setup(t, remote)

		_, err := a.Login(ctx, auth.Credentials{Email: "not-an-email", Password: "x"})
		verr := new(core.ValidationError)
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, 0, remote.calls)
	})
}

func TestStaticProvider_quickFill(t *testing.T) {
	p := auth.NewStaticProvider(staticEntries()...)

	visible := p.VisibleEntries()
	assert.Len(t, visible, 1, "hidden entries stay off the quick-fill list")

	var creds auth.Credentials
	visible[0].Fill(&creds)
	assert.Equal(t, "admin@jakartamandarin.com", creds.Email)
	assert.Equal(t, "admin123", creds.Password)
	// filling is a convenience only; nothing was submitted or persisted
}

func TestNewPassword_Validate(t *testing.T) {
	tests := []struct {
		name    string
		np      auth.NewPassword
		wantErr bool
	}{
		{
			name: "ok",
			np:   auth.NewPassword{Email: "a@b.cd", Password: "s3cret!pwd", PasswordConfirm: "s3cret!pwd"},
		},
		{
			name:    "too short",
			np:      auth.NewPassword{Email: "a@b.cd", Password: "short", PasswordConfirm: "short"},
			wantErr: true,
		},
		{
			name:    "all numeric",
			np:      auth.NewPassword{Email: "a@b.cd", Password: "12345678", PasswordConfirm: "12345678"},
			wantErr: true,
		},
		{
			name:    "confirmation mismatch",
			np:      auth.NewPassword{Email: "a@b.cd", Password: "s3cret!pwd", PasswordConfirm: "other"},
			wantErr: true,
		},
		{
			name:    "too similar to email",
			np:      auth.NewPassword{Email: "kevin.lim@jakartamandarin.com", Password: "kevin.lim@jakarta", PasswordConfirm: "kevin.lim@jakarta"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.np.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package auth

import (
	"context"
	"fmt"

	"github.com/jakartamandarin/console/core/session"
)

// Entry is one hard-coded allow-list account. Process-wide constant,
// used only when the remote login attempt fails.
type Entry struct {
	ID          int
	Name        string
	Email       string
	Password    string
	Role        string
	Description string
	Avatar      string
	Color       string
	Hidden      bool
}

func (e Entry) User() session.User {
	return session.User{
		ID:     fmt.Sprintf("%d", e.ID),
		Name:   e.Name,
		Email:  e.Email,
		Role:   e.Role,
		Avatar: e.Avatar,
		Color:  e.Color,
	}
}

// Fill copies the entry's credentials into the form without
// submitting them (the quick-fill helper on the login page).
func (e Entry) Fill(c *Credentials) {
	c.Email = e.Email
	c.Password = e.Password
}

var defaultEntries = []Entry{
	{
		ID: 1, Name: "Admin Utama", Email: "admin@jakartamandarin.com", Password: "admin123",
		Role: "admin", Description: "Akses penuh semua fitur", Avatar: "AU", Color: "#f5222d",
	},
	{
		ID: 2, Name: "Sales Admin", Email: "sea@jakartamandarin.com", Password: "sea123",
		Role: "sea", Description: "Dashboard sales & enrollment", Avatar: "SA", Color: "#1890ff",
	},
	{
		ID: 3, Name: "Koordinator SSC", Email: "ssc@jakartamandarin.com", Password: "ssc123",
		Role: "ssc", Description: "Student success & retention", Avatar: "KS", Color: "#52c41a",
	},
	{
		ID: 4, Name: "Siswa Demo", Email: "student@jakartamandarin.com", Password: "student123",
		Role: "student", Description: "Portal siswa", Avatar: "SD", Color: "#faad14", Hidden: true,
	},
}

type StaticProvider struct {
	entries []Entry
}

var _ Provider = (*StaticProvider)(nil)

func NewStaticProvider(entries ...Entry) *StaticProvider {
	if len(entries) == 0 {
		entries = defaultEntries
	}
	return &StaticProvider{entries: entries}
}

func (p *StaticProvider) Name() string { return "static allow-list" }

// Authenticate scans the allow-list for an exact, case-sensitive
// email+password match and synthesizes a session for it.
func (p *StaticProvider) Authenticate(_ context.Context, creds Credentials) (session.Session, error) {
	for _, e := range p.entries {
		if e.Email == creds.Email && e.Password == creds.Password {
			return session.Session{
				Token: fmt.Sprintf("mock-token-%d", e.ID),
				User:  e.User(),
			}, nil
		}
	}
	return session.Session{}, ErrInvalidCredentials
}

// VisibleEntries lists the accounts offered by the quick-fill helper.
func (p *StaticProvider) VisibleEntries() []Entry {
	out := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

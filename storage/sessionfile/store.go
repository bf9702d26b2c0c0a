// Package sessionfile stores the session in a single JSON file: the
// Go stand-in for the browser's durable key-value storage, holding
// the same two string entries (`token`, and `user` as serialized
// JSON) the web client keeps.
package sessionfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/jakartamandarin/console/core/session"
)

const fileName = "session.json"

// entries mirrors the two durable keys of the original client.
type entries struct {
	Token string `json:"token"`
	User  string `json:"user"` // JSON-serialized session.User
}

type store struct {
	mu   sync.Mutex
	path string
}

var _ session.Store = (*store)(nil) // interface compliance check

func NewStore(dir string) (session.Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "creating storage dir")
	}
	return &store{path: filepath.Join(dir, fileName)}, nil
}

func (st *store) Load() (session.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	raw, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return session.Session{}, session.ErrNoSession
		}
		return session.Session{}, errors.Wrap(err, "reading session file")
	}

	var ent entries
	if err := json.Unmarshal(raw, &ent); err != nil {
		return session.Session{}, errors.Wrap(err, "decoding session file")
	}
	if ent.Token == "" {
		return session.Session{}, session.ErrNoSession
	}

	s := session.Session{Token: ent.Token}
	if ent.User != "" {
		if err := json.Unmarshal([]byte(ent.User), &s.User); err != nil {
			return session.Session{}, errors.Wrap(err, "decoding stored user")
		}
	}
	return s, nil
}

func (st *store) Save(s session.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	usr, err := json.Marshal(s.User)
	if err != nil {
		return errors.Wrap(err, "encoding user")
	}
	raw, err := json.Marshal(entries{Token: s.Token, User: string(usr)})
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	if err := os.WriteFile(st.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return nil
}

func (st *store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}

package session

import "errors"

var ErrNoSession = errors.New("no active session")

// Store is the durable client storage holding the two session keys.
type Store interface {
	// Load returns the stored session or ErrNoSession.
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

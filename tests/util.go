package testutil

import (
	"sync"
	"testing"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/session"
)

// Logger routes diagnostics into the test log.
type Logger struct {
	t *testing.T
}

var _ core.Logger = (*Logger)(nil)

func NewLogger(t *testing.T) *Logger {
	return &Logger{t: t}
}

func (l *Logger) Enable(bool) {}

func (l *Logger) print(level, msg string, args []interface{}) {
	l.t.Helper()
	l.t.Logf("%s %s %v", level, msg, args)
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.print("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.print("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.print("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("%s %v", msg, args) }

// Notifier records every notice so tests can assert on what the user
// would have seen.
type Notifier struct {
	mu      sync.Mutex
	Notices []core.Notification
}

var _ core.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) record(level core.NotificationLevel, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Notices = append(n.Notices, core.Notification{Level: level, Message: msg})
}

func (n *Notifier) Success(msg string) { n.record(core.NotifySuccess, msg) }
func (n *Notifier) Error(msg string)   { n.record(core.NotifyError, msg) }
func (n *Notifier) Info(msg string)    { n.record(core.NotifyInfo, msg) }

// Last returns the most recent notice, if any.
func (n *Notifier) Last() (core.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Notices) == 0 {
		return core.Notification{}, false
	}
	return n.Notices[len(n.Notices)-1], true
}

// MemStore is an in-memory session.Store.
type MemStore struct {
	mu   sync.Mutex
	sess *session.Session
}

var _ session.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (st *MemStore) Load() (session.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.sess == nil {
		return session.Session{}, session.ErrNoSession
	}
	return *st.sess, nil
}

func (st *MemStore) Save(s session.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess = &s
	return nil
}

func (st *MemStore) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess = nil
	return nil
}

// ErrorMessages returns the error-level notices only.
func (n *Notifier) ErrorMessages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, note := range n.Notices {
		if note.Level == core.NotifyError {
			out = append(out, note.Message)
		}
	}
	return out
}

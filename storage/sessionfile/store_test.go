package sessionfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakartamandarin/console/core/session"
)

func TestStore_roundTrip(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}

	_, err = st.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	want := session.Session{
		Token: "mock-token-1",
		User:  session.User{ID: "1", Name: "Admin Utama", Email: "admin@jakartamandarin.com", Role: "admin", Color: "#f5222d"},
	}
	assert.NoError(t, st.Save(want))

	got, err := st.Load()
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	assert.NoError(t, st.Clear())
	_, err = st.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.NoError(t, st.Clear()) // idempotent
}

// The file must keep the same two string entries the web client
// persisted: `token`, and `user` holding JSON as a string.
func TestStore_fileLayout(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	assert.NoError(t, st.Save(session.Session{
		Token: "mock-token-3",
		User:  session.User{ID: "3", Name: "Koordinator SSC", Email: "ssc@jakartamandarin.com", Role: "ssc"},
	}))

	raw, err := os.ReadFile(filepath.Join(dir, "session.json"))
	if err != nil {
		t.Fatalf("reading session file failed: %v", err)
	}

	var keys map[string]string
	assert.NoError(t, json.Unmarshal(raw, &keys))
	assert.Equal(t, "mock-token-3", keys["token"])

	var usr session.User
	assert.NoError(t, json.Unmarshal([]byte(keys["user"]), &usr))
	assert.Equal(t, "ssc@jakartamandarin.com", usr.Email)
}

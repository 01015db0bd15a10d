package session

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kodelab", "token")
	fs := NewFileStore(path)

	// absent file reads as no token
	token, err := fs.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "" {
		t.Errorf("Token() = %q, want empty", token)
	}

	if err := fs.SetToken("abc"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if token, _ = fs.Token(); token != "abc" {
		t.Errorf("Token() = %q, want %q", token, "abc")
	}

	// trailing whitespace from hand-edited files is tolerated
	if err := ioutil.WriteFile(path, []byte("xyz\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if token, _ = fs.Token(); token != "xyz" {
		t.Errorf("Token() = %q, want %q", token, "xyz")
	}

	if err := fs.ClearToken(); err != nil {
		t.Fatalf("ClearToken() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("token file still exists after ClearToken()")
	}

	// clearing twice is fine
	if err := fs.ClearToken(); err != nil {
		t.Errorf("ClearToken() on absent file, error = %v", err)
	}
}

func TestSession(t *testing.T) {
	sess, err := New(NewMemStore("persisted"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// a stored token authenticates without a fresh login
	if !sess.Authenticated() {
		t.Error("Authenticated() = false, want true")
	}
	if sess.Token() != "persisted" {
		t.Errorf("Token() = %q, want %q", sess.Token(), "persisted")
	}

	var changes int
	sess.OnChange(func() { changes++ })

	if err := sess.SetToken("fresh"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if changes != 1 {
		t.Errorf("listener ran %d times, want 1", changes)
	}

	if err := sess.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if sess.Authenticated() {
		t.Error("Authenticated() = true after Clear()")
	}
	if changes != 2 {
		t.Errorf("listener ran %d times, want 2", changes)
	}
}

func TestSessionPersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	sess, err := New(NewFileStore(path))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := sess.SetToken("abc"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}

	// a new process picks the token back up
	sess2, err := New(NewFileStore(path))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if sess2.Token() != "abc" {
		t.Errorf("Token() = %q, want %q", sess2.Token(), "abc")
	}
}

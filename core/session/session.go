package session

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Store persists the bearer token across runs under a fixed location.
type Store interface {
	// Token returns the persisted token, or "" when absent.
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
}

// FileStore keeps the token in a single file, the process-wide analog of a
// fixed key in browser-local storage. It survives restarts and is removed
// on logout.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Token() (string, error) {
	data, err := ioutil.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading token file %s", fs.path)
	}
	return strings.TrimSpace(string(data)), nil
}

func (fs *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "creating token dir")
	}
	if err := ioutil.WriteFile(fs.path, []byte(token), 0o600); err != nil {
		return errors.Wrapf(err, "writing token file %s", fs.path)
	}
	return nil
}

func (fs *FileStore) ClearToken() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing token file %s", fs.path)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.Mutex
	token string
}

var _ Store = (*MemStore)(nil)

func NewMemStore(token string) *MemStore {
	return &MemStore{token: token}
}

func (ms *MemStore) Token() (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.token, nil
}

func (ms *MemStore) SetToken(token string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.token = token
	return nil
}

func (ms *MemStore) ClearToken() error {
	return ms.SetToken("")
}

// Session is the single source of truth of "is the user authenticated".
// One instance exists per process; it is passed explicitly to every module
// that needs it. Only the auth flow (and a 401 from the API) mutate it;
// feature modules just read.
type Session struct {
	mu        sync.RWMutex
	store     Store
	token     string
	listeners []func()
}

// New loads any persisted token from the store.
func New(store Store) (*Session, error) {
	token, err := store.Token()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, token: token}, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken persists the new token and notifies listeners of the change.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	if err := s.store.SetToken(token); err != nil {
		s.mu.Unlock()
		return err
	}
	s.token = token
	fns := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

// Clear drops the token; subsequent protected operations fail locally until
// the next login.
func (s *Session) Clear() error {
	s.mu.Lock()
	if err := s.store.ClearToken(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.token = ""
	fns := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

// OnChange registers fn to run after every token change (login and logout).
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

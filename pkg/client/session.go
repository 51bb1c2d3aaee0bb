package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Session holds the bearer token and admin profile, persisted to a JSON file
// so the login survives process restarts. A corrupt or unreadable file is
// treated as a logged-out session rather than an error.
type Session struct {
	path string

	mu    sync.Mutex
	token string
	admin *Admin
}

type sessionFile struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

// DefaultSessionPath returns the per-user session file location.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "um-qura", "session.json"), nil
}

func newSession(path string) *Session {
	s := &Session{path: path}
	s.load()
	return s
}

func (s *Session) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return
	}
	s.token = f.Token
	s.admin = f.Admin
}

// Token returns the stored bearer token, "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Admin returns a copy of the cached profile, nil when absent.
func (s *Session) Admin() *Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin == nil {
		return nil
	}
	admin := *s.admin
	return &admin
}

// Authenticated requires both a token and a cached profile.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.admin != nil
}

func (s *Session) save(token string, admin *Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.admin = admin
	return s.persist()
}

// clearToken drops only the token, leaving the profile; used by the 401 path.
func (s *Session) clearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	_ = s.persist()
}

// clear drops everything; idempotent.
func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.admin = nil
	_ = os.Remove(s.path)
}

// persist is called with s.mu held.
func (s *Session) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(sessionFile{Token: s.token, Admin: s.admin})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

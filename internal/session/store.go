package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/metodo21/app-client/internal/logging"
	"go.uber.org/zap"
)

// Store persists the single opaque session token on local disk and serves
// it to the REST client. The in-memory copy is only updated after the
// file write succeeded, so a token is never used before it is durable.
type Store struct {
	path   string
	logger *logging.SafeLogger

	mu    sync.RWMutex
	token string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, logger *logging.SafeLogger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads a previously persisted token into memory. A missing file is
// not an error; it just means no session was stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	token := strings.TrimSpace(string(data))

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return token, nil
}

// Save persists the token and then makes it the active credential.
// The write is atomic (temp file + rename) so a crash never leaves a
// truncated token behind.
func (s *Store) Save(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session_token-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set token file mode: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Debug("session token persisted", zap.String("path", s.path))
	return nil
}

// Clear removes the persisted token and the in-memory copy. Clearing an
// already empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	return nil
}

// Token returns the active session token, or empty when unauthenticated.
// Implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

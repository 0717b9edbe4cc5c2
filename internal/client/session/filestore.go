package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore хранит сессию в одном JSON-файле с правами 0600.
// Аналог cookie: легковесное хранилище, читаемое на каждый запрос.
type FileStore struct {
	path string
}

// Compile-time check that FileStore implements Store
var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-backed session store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save stores the session, overwriting any previous one
func (s *FileStore) Save(ctx context.Context, sess *Session) error {
	if sess == nil {
		return fmt.Errorf("session is nil")
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Get retrieves the stored session
func (s *FileStore) Get(ctx context.Context) (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	sess := &Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return sess, nil
}

// Clear removes the stored session
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// IsAuthenticated checks if a non-expired session exists
func (s *FileStore) IsAuthenticated(ctx context.Context) (bool, error) {
	sess, err := s.Get(ctx)
	if err != nil {
		if err == ErrSessionNotFound {
			return false, nil
		}
		return false, err
	}

	// Проверяем, не истек ли токен
	if !sess.AccessValid(time.Now()) {
		return false, nil
	}

	return true, nil
}

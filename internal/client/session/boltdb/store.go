package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/tutorhub/tutorhub/internal/client/session"
)

var (
	bucketSession = []byte("session")
	sessionKey    = []byte("current")
)

// Store represents BoltDB session store implementation for client
type Store struct {
	db *bbolt.DB
}

// Compile-time check that Store implements session.Store
var _ session.Store = (*Store)(nil)

// New creates a new BoltDB session store
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Store, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	store := &Store{db: db}

	// Инициализируем bucket
	if err := store.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}
		return nil
	})
}

// Save stores the session, overwriting any previous one
func (s *Store) Save(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return fmt.Errorf("session is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})
}

// Get retrieves the stored session
func (s *Store) Get(ctx context.Context) (*session.Session, error) {
	var sess *session.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return session.ErrSessionNotFound
		}

		sess = &session.Session{}
		if err := json.Unmarshal(data, sess); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return sess, nil
}

// Clear removes the stored session (logout)
func (s *Store) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(sessionKey) == nil {
			return session.ErrSessionNotFound
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		return nil
	})
}

// IsAuthenticated checks if a non-expired session exists
func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	sess, err := s.Get(ctx)
	if err != nil {
		if err == session.ErrSessionNotFound {
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

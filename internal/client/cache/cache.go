package cache

import (
	"context"
	"errors"
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
)

// Common cache errors
var (
	// ErrNotSynced indicates that the cache has never been filled
	ErrNotSynced = errors.New("lesson cache is empty, run 'tutorhub sync' first")
)

// Store defines interface for the offline lesson cache.
// Кеш — снимок расписания с сервера для работы без сети;
// источником истины всегда остается сервер.
type Store interface {
	// ReplaceRange atomically replaces cached lessons for dates in [from, to]
	ReplaceRange(ctx context.Context, from, to time.Time, lessons []models.Lesson) error

	// ByDateRange returns cached lessons for dates in [from, to].
	// Returns ErrNotSynced if the cache has never been filled.
	ByDateRange(ctx context.Context, from, to time.Time) ([]models.Lesson, error)

	// LastSync returns the time of the last successful sync.
	// Returns ErrNotSynced if the cache has never been filled.
	LastSync(ctx context.Context) (time.Time, error)

	// Close closes the underlying storage
	Close() error
}

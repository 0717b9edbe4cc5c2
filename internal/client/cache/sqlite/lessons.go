package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/tutorhub/internal/client/cache"
	"github.com/tutorhub/tutorhub/internal/models"
)

// dateLayout — формат хранения календарной даты в кеше
const dateLayout = "2006-01-02"

// ReplaceRange atomically replaces cached lessons for dates in [from, to]
func (s *Storage) ReplaceRange(ctx context.Context, from, to time.Time, lessons []models.Lesson) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Удаляем старый снимок периода
	_, err = tx.ExecContext(ctx,
		`DELETE FROM lessons WHERE lesson_date BETWEEN ? AND ?`,
		from.Format(dateLayout), to.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to clear cached range: %w", err)
	}

	query := `
		INSERT INTO lessons (
			id, lesson_date, time_range, subject,
			tutor_id, tutor_name, meeting_link, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, l := range lessons {
		_, err := tx.ExecContext(ctx, query,
			l.ID,
			l.Date.Format(dateLayout),
			l.TimeRange,
			l.Subject,
			l.Tutor.ID,
			l.Tutor.Name,
			l.MeetingLink,
			string(l.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to insert lesson %s: %w", l.ID, err)
		}
	}

	// Отмечаем момент синхронизации
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sync_state (id, last_sync) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET last_sync = excluded.last_sync`,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to update sync state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ByDateRange returns cached lessons for dates in [from, to]
func (s *Storage) ByDateRange(ctx context.Context, from, to time.Time) ([]models.Lesson, error) {
	// Пустой кеш без единой синхронизации — отдельная ситуация:
	// пользователь должен запустить sync, а не увидеть пустое расписание
	if _, err := s.LastSync(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, lesson_date, time_range, subject,
		       tutor_id, tutor_name, meeting_link, status
		FROM lessons
		WHERE lesson_date BETWEEN ? AND ?
		ORDER BY lesson_date, time_range
	`

	rows, err := s.db.QueryContext(ctx, query,
		from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var lessons []models.Lesson
	for rows.Next() {
		var (
			l       models.Lesson
			dateStr string
			status  string
		)
		err := rows.Scan(
			&l.ID, &dateStr, &l.TimeRange, &l.Subject,
			&l.Tutor.ID, &l.Tutor.Name, &l.MeetingLink, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}

		l.Date, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cached date %q: %w", dateStr, err)
		}
		l.Status = models.LessonStatus(status)

		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lessons: %w", err)
	}

	return lessons, nil
}

// LastSync returns the time of the last successful sync
func (s *Storage) LastSync(ctx context.Context) (time.Time, error) {
	var unix int64
	err := s.db.QueryRowContext(ctx,
		`SELECT last_sync FROM sync_state WHERE id = 1`).Scan(&unix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, cache.ErrNotSynced
		}
		return time.Time{}, fmt.Errorf("failed to query sync state: %w", err)
	}

	return time.Unix(unix, 0), nil
}

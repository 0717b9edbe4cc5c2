package schedule

import (
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
)

// DefaultNearStartThreshold — порог подсветки скорого начала занятия
const DefaultNearStartThreshold = 15 * time.Minute

// DeriveStatus возвращает статус занятия на момент now.
// Явный статус с сервера всегда выигрывает; вывод из времени — только
// запасной вариант для записей без статуса.
func DeriveStatus(explicit models.LessonStatus, date time.Time, start, end ClockTime, now time.Time) models.LessonStatus {
	if explicit != "" {
		return explicit
	}

	startAt := start.At(date)
	endAt := end.At(date)

	switch {
	case now.Before(startAt):
		return models.StatusUpcoming
	case !now.After(endAt):
		// Границы [start, end] включительно
		return models.StatusOngoing
	default:
		return models.StatusCompleted
	}
}

// NearStart сообщает, что занятие скоро начнется: статус не completed,
// начало строго в будущем и не дальше threshold. Чисто визуальная
// подсказка, не влияющая на корректность.
func NearStart(status models.LessonStatus, date time.Time, start ClockTime, now time.Time, threshold time.Duration) bool {
	if status == models.StatusCompleted {
		return false
	}

	until := start.At(date).Sub(now)
	return until > 0 && until <= threshold
}

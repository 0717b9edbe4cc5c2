package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/tutorhub/internal/models"
)

// TestDeriveStatus проверяет вывод статуса из времени занятия
func TestDeriveStatus(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	start := ClockTime{Hour: 9, Minute: 0}
	end := ClockTime{Hour: 10, Minute: 0}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 15, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name     string
		explicit models.LessonStatus
		now      time.Time
		want     models.LessonStatus
	}{
		{
			name: "Before start is upcoming",
			now:  at(8, 0),
			want: models.StatusUpcoming,
		},
		{
			name: "Exactly at start is ongoing",
			now:  at(9, 0),
			want: models.StatusOngoing,
		},
		{
			name: "Middle of lesson is ongoing",
			now:  at(9, 30),
			want: models.StatusOngoing,
		},
		{
			name: "Exactly at end is ongoing",
			now:  at(10, 0),
			want: models.StatusOngoing,
		},
		{
			name: "After end is completed",
			now:  at(11, 0),
			want: models.StatusCompleted,
		},
		{
			name:     "Explicit cancelled wins over time",
			explicit: models.StatusCancelled,
			now:      at(9, 30),
			want:     models.StatusCancelled,
		},
		{
			name:     "Explicit completed wins over time",
			explicit: models.StatusCompleted,
			now:      at(8, 0),
			want:     models.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.explicit, date, start, end, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNearStart проверяет подсветку скорого начала занятия
func TestNearStart(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	start := ClockTime{Hour: 9, Minute: 0}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 15, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name   string
		status models.LessonStatus
		now    time.Time
		want   bool
	}{
		{
			name:   "Ten minutes before start",
			status: models.StatusUpcoming,
			now:    at(8, 50),
			want:   true,
		},
		{
			name:   "Exactly at threshold",
			status: models.StatusUpcoming,
			now:    at(8, 45),
			want:   true,
		},
		{
			name:   "Too far before start",
			status: models.StatusUpcoming,
			now:    at(8, 30),
			want:   false,
		},
		{
			name:   "Already started",
			status: models.StatusOngoing,
			now:    at(9, 0),
			want:   false,
		},
		{
			name:   "Completed never near start",
			status: models.StatusCompleted,
			now:    at(8, 50),
			want:   false,
		},
		{
			name:   "Cancelled but still near start",
			status: models.StatusCancelled,
			now:    at(8, 50),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearStart(tt.status, date, start, tt.now, DefaultNearStartThreshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

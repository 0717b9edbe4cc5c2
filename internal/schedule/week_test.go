package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/models"
)

// TestWeekGrid_Window проверяет число дней и их даты
func TestWeekGrid_Window(t *testing.T) {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	days := WeekGrid(nil, start)

	require.Len(t, days, WeekDays)
	for i, day := range days {
		assert.Equal(t, start.AddDate(0, 0, i), day.Date)
		assert.Empty(t, day.Blocks)
	}
}

// TestWeekGrid_Placement проверяет минутные смещения от верха сетки
func TestWeekGrid_Placement(t *testing.T) {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	lessons := []models.Lesson{
		{ID: "first", Date: start, TimeRange: "08:00 - 08:30"},
		{ID: "noon", Date: start, TimeRange: "12:00 - 13:30"},
	}

	days := WeekGrid(lessons, start)

	require.Len(t, days[0].Blocks, 2)

	// Занятие у верхней границы окна: смещение ноль, высота 30 минут
	first := days[0].Blocks[0]
	assert.Equal(t, "first", first.Lesson.ID)
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, 30, first.Height)
	assert.Equal(t, 30, first.DurationMinutes)
	assert.False(t, first.Clipped)

	// 12:00 — четыре часа от 08:00
	noon := days[0].Blocks[1]
	assert.Equal(t, 240, noon.Offset)
	assert.Equal(t, 90, noon.Height)
	assert.False(t, noon.Clipped)
}

// TestWeekGrid_Clipping проверяет прижатие занятий к границам окна
func TestWeekGrid_Clipping(t *testing.T) {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	lessons := []models.Lesson{
		// Начинается до окна, заканчивается внутри
		{ID: "early", Date: start, TimeRange: "07:30 - 09:00"},
		// Начинается внутри, заканчивается после окна
		{ID: "late", Date: start, TimeRange: "21:30 - 22:30"},
		// Целиком вне окна — отбрасывается
		{ID: "night", Date: start, TimeRange: "23:00 - 23:45"},
		{ID: "dawn", Date: start, TimeRange: "06:00 - 07:00"},
	}

	days := WeekGrid(lessons, start)

	require.Len(t, days[0].Blocks, 2)

	early := days[0].Blocks[0]
	assert.Equal(t, "early", early.Lesson.ID)
	assert.Equal(t, 0, early.Offset)
	assert.Equal(t, 60, early.Height)
	assert.Equal(t, 90, early.DurationMinutes)
	assert.True(t, early.Clipped)

	late := days[0].Blocks[1]
	assert.Equal(t, "late", late.Lesson.ID)
	assert.Equal(t, (21*60+30)-8*60, late.Offset)
	assert.Equal(t, 30, late.Height)
	assert.True(t, late.Clipped)
}

// TestWeekGrid_EdgeTouchingWindow проверяет занятия, касающиеся границ окна
func TestWeekGrid_EdgeTouchingWindow(t *testing.T) {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	lessons := []models.Lesson{
		// Заканчивается ровно на верхней границе — не пересекает окно
		{ID: "ends-at-open", Date: start, TimeRange: "07:00 - 08:00"},
		// Начинается ровно на нижней границе — не пересекает окно
		{ID: "starts-at-close", Date: start, TimeRange: "22:00 - 23:00"},
	}

	days := WeekGrid(lessons, start)

	assert.Empty(t, days[0].Blocks)
}

// TestWeekGrid_SkipsBrokenTimes проверяет пропуск нечитаемых записей
func TestWeekGrid_SkipsBrokenTimes(t *testing.T) {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	lessons := []models.Lesson{
		{ID: "ok", Date: start, TimeRange: "10:00 - 11:00"},
		{ID: "broken", Date: start, TimeRange: "sometime"},
	}

	days := WeekGrid(lessons, start)

	require.Len(t, days[0].Blocks, 1)
	assert.Equal(t, "ok", days[0].Blocks[0].Lesson.ID)
}

// TestWeekGrid_SortsByStart проверяет сортировку блоков дня
func TestWeekGrid_SortsByStart(t *testing.T) {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	lessons := []models.Lesson{
		{ID: "b", Date: start, TimeRange: "15:00 - 16:00"},
		{ID: "a", Date: start, TimeRange: "09:00 - 10:00"},
	}

	days := WeekGrid(lessons, start)

	require.Len(t, days[0].Blocks, 2)
	assert.Equal(t, "a", days[0].Blocks[0].Lesson.ID)
	assert.Equal(t, "b", days[0].Blocks[1].Lesson.ID)
}

package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/models"
)

// lessonsOn создает n занятий на дату с часовыми слотами начиная с 08:00
func lessonsOn(date time.Time, n int) []models.Lesson {
	lessons := make([]models.Lesson, 0, n)
	for i := 0; i < n; i++ {
		lessons = append(lessons, models.Lesson{
			ID:        fmt.Sprintf("l%d", i),
			Date:      date,
			TimeRange: fmt.Sprintf("%02d:00 - %02d:00", 8+i, 9+i),
			Subject:   "Math",
		})
	}
	return lessons
}

// TestDayLessons проверяет фильтрацию по дате и сортировку по началу
func TestDayLessons(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	other := date.AddDate(0, 0, 1)
	now := time.Date(2026, 3, 15, 7, 0, 0, 0, time.Local)

	lessons := []models.Lesson{
		{ID: "late", Date: date, TimeRange: "15:00 - 16:00"},
		{ID: "other-day", Date: other, TimeRange: "09:00 - 10:00"},
		{ID: "early", Date: date, TimeRange: "09:00 - 10:00"},
		{ID: "broken", Date: date, TimeRange: "whenever"},
	}

	day := DayLessons(lessons, date, now)

	require.Len(t, day, 2)
	assert.Equal(t, "early", day[0].ID)
	assert.Equal(t, "late", day[1].ID)
	assert.Equal(t, models.StatusUpcoming, day[0].Status)
}

// TestDayLessons_StableOrder проверяет устойчивость порядка занятий
// с одинаковым временем начала
func TestDayLessons_StableOrder(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	now := time.Now()

	lessons := []models.Lesson{
		{ID: "a", Date: date, TimeRange: "09:00 - 10:00"},
		{ID: "b", Date: date, TimeRange: "09:00 - 09:30"},
	}

	day := DayLessons(lessons, date, now)

	require.Len(t, day, 2)
	assert.Equal(t, "a", day[0].ID)
	assert.Equal(t, "b", day[1].ID)
}

// TestTotalPages проверяет расчет числа страниц
func TestTotalPages(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 1},
		{n: 1, want: 1},
		{n: 4, want: 1},
		{n: 5, want: 2},
		{n: 8, want: 2},
		{n: 10, want: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lessons", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n))
		})
	}
}

// TestClampPage проверяет прижатие номера страницы к допустимому диапазону
func TestClampPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		n    int
		want int
	}{
		{name: "Zero clamps to first", page: 0, n: 10, want: 1},
		{name: "Negative clamps to first", page: -3, n: 10, want: 1},
		{name: "Within range unchanged", page: 2, n: 10, want: 2},
		{name: "Beyond last clamps to last", page: 4, n: 10, want: 3},
		{name: "Empty list has one page", page: 7, n: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.n))
		})
	}
}

// TestPageSlice проверяет разбиение списка дня на страницы по четыре
func TestPageSlice(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	day := DayLessons(lessonsOn(date, 10), date, time.Now())
	require.Len(t, day, 10)

	first := PageSlice(day, 1)
	require.Len(t, first, 4)
	assert.Equal(t, "l0", first[0].ID)

	second := PageSlice(day, 2)
	require.Len(t, second, 4)
	assert.Equal(t, "l4", second[0].ID)

	// Последняя страница короче
	third := PageSlice(day, 3)
	require.Len(t, third, 2)
	assert.Equal(t, "l8", third[0].ID)

	// Выход за диапазон прижимается к последней странице
	assert.Equal(t, third, PageSlice(day, 99))
}

// TestPager проверяет, что страница запоминается на каждую дату отдельно
// и прижимается при сжатии списка
func TestPager(t *testing.T) {
	day1 := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	p := NewPager()

	// По умолчанию первая страница
	assert.Equal(t, 1, p.Page(day1, 10))

	assert.Equal(t, 3, p.SetPage(day1, 3, 10))
	assert.Equal(t, 3, p.Page(day1, 10))

	// Другая дата живет со своим номером
	assert.Equal(t, 1, p.Page(day2, 10))
	p.SetPage(day2, 2, 10)
	assert.Equal(t, 2, p.Page(day2, 10))
	assert.Equal(t, 3, p.Page(day1, 10))

	// Список сжался с 10 до 5 занятий — страница прижимается ко второй
	assert.Equal(t, 2, p.Page(day1, 5))

	// SetPage тоже прижимает
	assert.Equal(t, 1, p.SetPage(day1, 0, 5))
}

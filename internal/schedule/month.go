package schedule

import (
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
)

// MonthCell представляет одну ячейку месячной сетки
type MonthCell struct {
	Date       time.Time
	InMonth    bool // принадлежит ли ячейка отображаемому месяцу
	HasEvent   bool // есть ли хотя бы одно занятие в этот день
	IsToday    bool
	IsSelected bool
}

// MonthGrid строит сетку календаря на месяц, содержащий month:
// от начала недели первого дня месяца до конца недели последнего.
// Число ячеек всегда кратно 7, каждая дата месяца встречается ровно
// один раз. Источник занятий не изменяется.
func MonthGrid(month time.Time, weekStart time.Weekday, lessons []models.Lesson, today, selected time.Time) []MonthCell {
	y, m, _ := month.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)

	// Откатываемся к началу недели, содержащей первое число
	start := first
	for start.Weekday() != weekStart {
		start = start.AddDate(0, 0, -1)
	}

	// И идем вперед до конца недели, содержащей последнее число
	end := last
	for end.AddDate(0, 0, 1).Weekday() != weekStart {
		end = end.AddDate(0, 0, 1)
	}

	var cells []MonthCell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, MonthCell{
			Date:       d,
			InMonth:    d.Month() == m,
			HasEvent:   hasLessonOn(lessons, d),
			IsToday:    models.SameDate(d, today),
			IsSelected: models.SameDate(d, selected),
		})
	}

	return cells
}

// hasLessonOn проверяет наличие хотя бы одного занятия на дату
func hasLessonOn(lessons []models.Lesson, date time.Time) bool {
	for _, l := range lessons {
		if l.On(date) {
			return true
		}
	}
	return false
}

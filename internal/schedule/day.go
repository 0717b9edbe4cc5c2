package schedule

import (
	"sort"
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
)

// PageSize — фиксированный размер страницы списка занятий дня
const PageSize = 4

// DayLesson представляет занятие в списке дня с производным статусом
type DayLesson struct {
	models.Lesson
	Start     ClockTime
	End       ClockTime
	Status    models.LessonStatus
	NearStart bool
}

// DayLessons возвращает занятия выбранной даты, отсортированные по
// времени начала, со статусом на момент now. Записи с нечитаемым
// диапазоном времени пропускаются.
func DayLessons(lessons []models.Lesson, date, now time.Time) []DayLesson {
	var day []DayLesson
	for _, l := range lessons {
		if !l.On(date) {
			continue
		}

		start, end, err := ParseTimeRange(l.TimeRange)
		if err != nil {
			continue
		}

		status := DeriveStatus(l.Status, date, start, end, now)
		day = append(day, DayLesson{
			Lesson:    l,
			Start:     start,
			End:       end,
			Status:    status,
			NearStart: NearStart(status, date, start, now, DefaultNearStartThreshold),
		})
	}

	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Start.MinuteOfDay() < day[j].Start.MinuteOfDay()
	})

	return day
}

// TotalPages возвращает число страниц для n занятий.
// Пустой список занимает одну (пустую) страницу.
func TotalPages(n int) int {
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage ограничивает номер страницы диапазоном [1, TotalPages(n)]
func ClampPage(page, n int) int {
	total := TotalPages(n)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// PageSlice возвращает занятия страницы page (нумерация с 1)
func PageSlice(day []DayLesson, page int) []DayLesson {
	page = ClampPage(page, len(day))
	lo := (page - 1) * PageSize
	hi := lo + PageSize
	if hi > len(day) {
		hi = len(day)
	}
	return day[lo:hi]
}

// Pager хранит номер страницы отдельно для каждой даты.
// Если список дня сжался ниже сохраненной страницы, номер
// прижимается к последней допустимой странице.
type Pager struct {
	pages map[string]int
}

// NewPager создает пейджер списка дня
func NewPager() *Pager {
	return &Pager{pages: make(map[string]int)}
}

func pagerKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// Page возвращает текущую страницу даты для списка из n занятий
func (p *Pager) Page(date time.Time, n int) int {
	page, ok := p.pages[pagerKey(date)]
	if !ok {
		return 1
	}
	return ClampPage(page, n)
}

// SetPage запоминает страницу даты, предварительно ограничив ее
func (p *Pager) SetPage(date time.Time, page, n int) int {
	clamped := ClampPage(page, n)
	p.pages[pagerKey(date)] = clamped
	return clamped
}

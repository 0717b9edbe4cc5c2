package schedule

import (
	"sort"
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
)

// Окно недельной сетки: почасовые ряды 08:00–22:00,
// один юнит раскладки равен одной минуте (ряд часа — 60 юнитов).
const (
	GridStartHour = 8
	GridEndHour   = 22
	WeekDays      = 5
)

// Block представляет занятие, размещенное в недельной сетке.
// Offset и Height — в юнитах раскладки (минутах) от верха сетки.
// Занятия, выходящие за окно, прижимаются к его границам; Clipped
// отмечает, что блок показан не целиком.
type Block struct {
	Lesson          models.Lesson
	Start           ClockTime
	End             ClockTime
	Offset          int
	Height          int
	DurationMinutes int
	Clipped         bool
}

// WeekDay представляет один день недельной сетки
type WeekDay struct {
	Date   time.Time
	Blocks []Block
}

// WeekGrid строит операционный вид на WeekDays дней начиная со start
// (сегодня плюс четыре следующих дня). Занятия каждого дня размещаются
// по минутному смещению от 08:00 и сортируются по времени начала.
// Занятия целиком вне окна и записи с нечитаемым временем пропускаются.
func WeekGrid(lessons []models.Lesson, start time.Time) []WeekDay {
	winStart := GridStartHour * 60
	winEnd := GridEndHour * 60

	days := make([]WeekDay, 0, WeekDays)
	for i := 0; i < WeekDays; i++ {
		date := start.AddDate(0, 0, i)
		day := WeekDay{Date: date}

		for _, l := range lessons {
			if !l.On(date) {
				continue
			}

			s, e, err := ParseTimeRange(l.TimeRange)
			if err != nil {
				continue
			}

			startMin := s.MinuteOfDay()
			endMin := e.MinuteOfDay()
			if endMin <= winStart || startMin >= winEnd {
				continue
			}

			top := startMin
			if top < winStart {
				top = winStart
			}
			bottom := endMin
			if bottom > winEnd {
				bottom = winEnd
			}

			day.Blocks = append(day.Blocks, Block{
				Lesson:          l,
				Start:           s,
				End:             e,
				Offset:          top - winStart,
				Height:          bottom - top,
				DurationMinutes: endMin - startMin,
				Clipped:         top != startMin || bottom != endMin,
			})
		}

		sort.SliceStable(day.Blocks, func(i, j int) bool {
			return day.Blocks[i].Start.MinuteOfDay() < day.Blocks[j].Start.MinuteOfDay()
		})

		days = append(days, day)
	}

	return days
}

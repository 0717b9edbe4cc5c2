package models

import "time"

// LessonStatus представляет статус занятия в его жизненном цикле
type LessonStatus string

const (
	StatusUpcoming  LessonStatus = "upcoming"
	StatusOngoing   LessonStatus = "ongoing"
	StatusCompleted LessonStatus = "completed"
	StatusCancelled LessonStatus = "cancelled"
)

// Valid проверяет, что статус является одним из известных значений
func (s LessonStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Tutor представляет ссылку на преподавателя занятия
type Tutor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lesson представляет одно занятие.
// Date хранит только календарную дату (полночь в локальной зоне),
// TimeRange — исходную строку "HH:MM - HH:MM" с сервера.
// Status пустой, если сервер не прислал явный статус — тогда он
// выводится из текущего времени на стороне представления.
type Lesson struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	TimeRange   string       `json:"time_range"`
	Subject     string       `json:"subject"`
	Tutor       Tutor        `json:"tutor"`
	MeetingLink string       `json:"meeting_link,omitempty"`
	Status      LessonStatus `json:"status,omitempty"`
}

// On проверяет, приходится ли занятие на указанную календарную дату
func (l Lesson) On(date time.Time) bool {
	return SameDate(l.Date, date)
}

// SameDate сравнивает два момента времени только по календарной дате
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateOnly отбрасывает время, оставляя полночь той же календарной даты
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

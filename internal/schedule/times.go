package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime представляет время суток с точностью до минуты.
// Лексикографический порядок строкового вида "HH:MM" совпадает
// с хронологическим в пределах одного дня.
type ClockTime struct {
	Hour   int
	Minute int
}

// String возвращает время в виде "HH:MM" с ведущими нулями
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinuteOfDay возвращает число минут с полуночи
func (t ClockTime) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// At возвращает момент времени в указанную календарную дату
func (t ClockTime) At(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, date.Location())
}

// ParseClock разбирает строку "HH:MM".
// Неразбираемая строка — ошибка валидации, а не NaN-подобный мусор
// в арифметике раскладки.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: bad minute: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: out of range", s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ParseTimeRange разбирает диапазон "HH:MM - HH:MM".
// Конец не может предшествовать началу: занятия не пересекают полночь.
func ParseTimeRange(s string) (start, end ClockTime, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return ClockTime{}, ClockTime{}, fmt.Errorf("invalid time range %q: expected \"HH:MM - HH:MM\"", s)
	}

	start, err = ParseClock(parts[0])
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("invalid time range %q: %w", s, err)
	}

	end, err = ParseClock(parts[1])
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("invalid time range %q: %w", s, err)
	}

	if end.MinuteOfDay() < start.MinuteOfDay() {
		return ClockTime{}, ClockTime{}, fmt.Errorf("invalid time range %q: end before start", s)
	}

	return start, end, nil
}

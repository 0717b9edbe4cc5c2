package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tutorhub/tutorhub/internal/models"
	"github.com/tutorhub/tutorhub/internal/schedule"
)

// view represents the current screen
type view int

const (
	viewMonth view = iota
	viewDay
)

// Model is the schedule browser TUI model.
// Занятия загружаются один раз до запуска программы; модель только
// строит проекции (месяц/день) поверх неизменяемого списка.
type Model struct {
	lessons  []models.Lesson
	now      time.Time
	selected time.Time
	pager    *schedule.Pager
	mode     view
	width    int
	height   int
}

// NewModel creates a new schedule browser model
func NewModel(lessons []models.Lesson, now time.Time) Model {
	return Model{
		lessons:  lessons,
		now:      now,
		selected: models.DateOnly(now),
		pager:    schedule.NewPager(),
		mode:     viewMonth,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Run запускает интерактивный браузер расписания
func Run(lessons []models.Lesson, now time.Time) error {
	p := tea.NewProgram(NewModel(lessons, now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run schedule browser: %w", err)
	}
	return nil
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tutorhub/tutorhub/internal/models"
	"github.com/tutorhub/tutorhub/internal/schedule"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

		switch m.mode {
		case viewMonth:
			return m.updateMonth(msg), nil
		case viewDay:
			return m.updateDay(msg), nil
		}
	}

	return m, nil
}

// updateMonth обрабатывает клавиши месячного вида.
// Выбор даты — чистое изменение состояния; сетка перестраивается
// на каждом рендере.
func (m Model) updateMonth(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, keys.Left):
		m.selected = m.selected.AddDate(0, 0, -1)
	case key.Matches(msg, keys.Right):
		m.selected = m.selected.AddDate(0, 0, 1)
	case key.Matches(msg, keys.Up):
		m.selected = m.selected.AddDate(0, 0, -7)
	case key.Matches(msg, keys.Down):
		m.selected = m.selected.AddDate(0, 0, 7)
	case key.Matches(msg, keys.PrevMonth):
		m.selected = m.selected.AddDate(0, -1, 0)
	case key.Matches(msg, keys.NextMonth):
		m.selected = m.selected.AddDate(0, 1, 0)
	case key.Matches(msg, keys.Today):
		m.selected = models.DateOnly(m.now)
	case key.Matches(msg, keys.Enter):
		m.mode = viewDay
	}
	return m
}

// updateDay обрабатывает клавиши списка дня: страницы и возврат
func (m Model) updateDay(msg tea.KeyMsg) Model {
	day := schedule.DayLessons(m.lessons, m.selected, time.Now())
	page := m.pager.Page(m.selected, len(day))

	switch {
	case key.Matches(msg, keys.Left):
		m.pager.SetPage(m.selected, page-1, len(day))
	case key.Matches(msg, keys.Right):
		m.pager.SetPage(m.selected, page+1, len(day))
	case key.Matches(msg, keys.Escape):
		m.mode = viewMonth
	}
	return m
}

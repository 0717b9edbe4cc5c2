package tui

import "github.com/charmbracelet/lipgloss"

// Цветовая палитра браузера расписания
var (
	colorPrimary = lipgloss.Color("#4ECDC4")
	colorMuted   = lipgloss.Color("#6C757D")
	colorToday   = lipgloss.Color("#FFE66D")
	colorOngoing = lipgloss.Color("#95E1A3")
	colorUrgent  = lipgloss.Color("#FF6B6B")
)

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	weekdayStyle  = lipgloss.NewStyle().Faint(true)
	outMonthStyle = lipgloss.NewStyle().Foreground(colorMuted)
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorToday)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	ongoingStyle  = lipgloss.NewStyle().Foreground(colorOngoing)
	urgentStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorUrgent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	helpStyle     = lipgloss.NewStyle().Faint(true).Padding(1, 1, 0, 1)
)

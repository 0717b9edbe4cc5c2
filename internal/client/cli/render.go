package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tutorhub/tutorhub/internal/models"
	"github.com/tutorhub/tutorhub/internal/schedule"
)

// Цветовая палитра календаря
var (
	colorPrimary = lipgloss.Color("#4ECDC4")
	colorMuted   = lipgloss.Color("#6C757D")
	colorToday   = lipgloss.Color("#FFE66D")
	colorOngoing = lipgloss.Color("#95E1A3")
	colorUrgent  = lipgloss.Color("#FF6B6B")
)

// Стили календаря
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	weekdayStyle  = lipgloss.NewStyle().Faint(true)
	outMonthStyle = lipgloss.NewStyle().Foreground(colorMuted)
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorToday)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	ongoingStyle  = lipgloss.NewStyle().Foreground(colorOngoing)
	urgentStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorUrgent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderMonth отрисовывает месячную сетку.
// Точка после числа отмечает день с занятиями.
func renderMonth(cells []schedule.MonthCell, month time.Time, weekStart time.Weekday) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(month.Format("January 2006")))
	b.WriteString("\n")

	// Строка дней недели начиная с weekStart
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(weekStart) + i) % 7)
		b.WriteString(weekdayStyle.Render(fmt.Sprintf("%4s", day.String()[:3])))
	}
	b.WriteString("\n")

	for i, cell := range cells {
		marker := " "
		if cell.HasEvent {
			marker = "•"
		}
		text := fmt.Sprintf("%3d%s", cell.Date.Day(), marker)

		style := lipgloss.NewStyle()
		switch {
		case cell.IsSelected:
			style = selectedStyle
		case cell.IsToday:
			style = todayStyle
		case !cell.InMonth:
			style = outMonthStyle
		}
		b.WriteString(style.Render(text))

		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDayLesson отрисовывает одну строку списка дня
func renderDayLesson(l schedule.DayLesson) string {
	line := fmt.Sprintf("%s - %s  %-20s %s", l.Start, l.End, l.Subject, l.Tutor.Name)

	switch {
	case l.NearStart:
		line = urgentStyle.Render(line + "  (starts soon)")
	case l.Status == models.StatusOngoing:
		line = ongoingStyle.Render(line + "  (ongoing)")
	case l.Status == models.StatusCancelled:
		line = mutedStyle.Render(line + "  (cancelled)")
	case l.Status == models.StatusCompleted:
		line = mutedStyle.Render(line + "  (completed)")
	}

	if l.MeetingLink != "" {
		line += "\n        " + mutedStyle.Render(l.MeetingLink)
	}

	return line
}

// renderWeek отрисовывает пятидневную сетку в виде списка блоков
// с их смещениями в юнитах раскладки
func renderWeek(days []schedule.WeekDay) string {
	var b strings.Builder

	for _, day := range days {
		b.WriteString(headerStyle.Render(day.Date.Format("Mon 02 Jan")))
		b.WriteString("\n")

		if len(day.Blocks) == 0 {
			b.WriteString(mutedStyle.Render("  no lessons"))
			b.WriteString("\n")
			continue
		}

		for _, block := range day.Blocks {
			line := fmt.Sprintf("  %s - %s  %-20s %s",
				block.Start, block.End, block.Lesson.Subject, block.Lesson.Tutor.Name)
			if block.Clipped {
				line += mutedStyle.Render("  (outside 08:00-22:00, clipped)")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

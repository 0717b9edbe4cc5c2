package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tutorhub/tutorhub/internal/models"
	"github.com/tutorhub/tutorhub/internal/schedule"
)

// View implements tea.Model
func (m Model) View() string {
	switch m.mode {
	case viewDay:
		return m.viewDay()
	default:
		return m.viewMonth()
	}
}

// viewMonth отрисовывает месячную сетку вокруг выбранной даты
func (m Model) viewMonth() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.selected.Format("January 2006")))
	b.WriteString("\n\n")

	for i := 0; i < 7; i++ {
		day := time.Weekday((int(time.Monday) + i) % 7)
		b.WriteString(weekdayStyle.Render(fmt.Sprintf("%4s", day.String()[:3])))
	}
	b.WriteString("\n")

	cells := schedule.MonthGrid(m.selected, time.Monday, m.lessons, m.now, m.selected)
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

	b.WriteString(helpStyle.Render("←→↑↓ move · [/] month · enter open day · t today · q quit"))
	return b.String()
}

// viewDay отрисовывает страницу списка занятий выбранной даты
func (m Model) viewDay() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.selected.Format("Monday, 02 January 2006")))
	b.WriteString("\n\n")

	day := schedule.DayLessons(m.lessons, m.selected, time.Now())
	if len(day) == 0 {
		b.WriteString(mutedStyle.Render("No lessons on this date."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back · q quit"))
		return b.String()
	}

	page := m.pager.Page(m.selected, len(day))
	for _, l := range schedule.PageSlice(day, page) {
		b.WriteString(m.renderLesson(l))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(
		fmt.Sprintf("Page %d of %d (%d lesson(s))", page, schedule.TotalPages(len(day)), len(day))))
	b.WriteString(helpStyle.Render("←→ page · esc back · q quit"))
	return b.String()
}

// renderLesson отрисовывает одну строку списка дня
func (m Model) renderLesson(l schedule.DayLesson) string {
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

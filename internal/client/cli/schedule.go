package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/tutorhub/tutorhub/internal/client/tui"
	"github.com/tutorhub/tutorhub/internal/models"
	"github.com/tutorhub/tutorhub/internal/schedule"
)

// RunSchedule диспетчеризует подкоманды расписания
func (c *Cli) RunSchedule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tutorhub schedule month|day|week|browse")
	}

	switch args[0] {
	case "month":
		return c.runScheduleMonth(ctx, args[1:])
	case "day":
		return c.runScheduleDay(ctx, args[1:])
	case "week":
		return c.runScheduleWeek(ctx)
	case "browse":
		return c.runScheduleBrowse(ctx)
	default:
		return fmt.Errorf("unknown schedule view %q (expected month, day, week or browse)", args[0])
	}
}

// fetchLessons загружает занятия за период с сервера,
// при недоступности сети откатываясь на офлайн-кеш
func (c *Cli) fetchLessons(ctx context.Context, from, to time.Time, offline bool) ([]models.Lesson, error) {
	if offline {
		return c.cache.ByDateRange(ctx, from, to)
	}

	lessons, err := c.apiClient.Lessons(ctx, from, to)
	if err != nil {
		slog.Warn("falling back to offline cache", "error", err)
		cached, cacheErr := c.cache.ByDateRange(ctx, from, to)
		if cacheErr != nil {
			// Сети нет и кеша нет — отдаем исходную ошибку сервера
			return nil, err
		}
		fmt.Println("⚠️  Server unavailable, showing cached schedule.")
		return cached, nil
	}

	return lessons, nil
}

func (c *Cli) runScheduleMonth(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedule month", flag.ContinueOnError)
	monthFlag := fs.String("month", "", "Month to display (YYYY-MM, default current)")
	selectFlag := fs.String("select", "", "Selected date (YYYY-MM-DD)")
	offline := fs.Bool("offline", false, "Read from the offline cache only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	month := now
	if *monthFlag != "" {
		parsed, err := time.ParseInLocation("2006-01", *monthFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --month %q: %w", *monthFlag, err)
		}
		month = parsed
	}

	selected := time.Time{}
	if *selectFlag != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *selectFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --select %q: %w", *selectFlag, err)
		}
		selected = parsed
	}

	// Сетка покрывает целые недели, поэтому берем занятия с запасом
	y, m, _ := month.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.Local)
	from := first.AddDate(0, 0, -7)
	to := first.AddDate(0, 1, 7)

	lessons, err := c.fetchLessons(ctx, from, to, *offline)
	if err != nil {
		return err
	}

	cells := schedule.MonthGrid(month, time.Monday, lessons, now, selected)
	fmt.Println(renderMonth(cells, month, time.Monday))

	return nil
}

func (c *Cli) runScheduleDay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedule day", flag.ContinueOnError)
	dateFlag := fs.String("date", "", "Date to display (YYYY-MM-DD, default today)")
	pageFlag := fs.Int("page", 1, "Page number")
	offline := fs.Bool("offline", false, "Read from the offline cache only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	date := models.DateOnly(now)
	if *dateFlag != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *dateFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", *dateFlag, err)
		}
		date = parsed
	}

	lessons, err := c.fetchLessons(ctx, date, date, *offline)
	if err != nil {
		return err
	}

	day := schedule.DayLessons(lessons, date, now)
	page := schedule.ClampPage(*pageFlag, len(day))

	fmt.Println(headerStyle.Render(date.Format("Monday, 02 January 2006")))
	if len(day) == 0 {
		fmt.Println(mutedStyle.Render("No lessons on this date."))
		return nil
	}

	for _, l := range schedule.PageSlice(day, page) {
		fmt.Println(renderDayLesson(l))
	}
	fmt.Println()
	fmt.Printf("Page %d of %d (%d lesson(s))\n", page, schedule.TotalPages(len(day)), len(day))

	return nil
}

func (c *Cli) runScheduleWeek(ctx context.Context) error {
	now := time.Now()
	start := models.DateOnly(now)
	end := start.AddDate(0, 0, schedule.WeekDays-1)

	lessons, err := c.fetchLessons(ctx, start, end, false)
	if err != nil {
		return err
	}

	fmt.Print(renderWeek(schedule.WeekGrid(lessons, start)))
	return nil
}

func (c *Cli) runScheduleBrowse(ctx context.Context) error {
	now := time.Now()

	// Загружаем окно в три месяца вокруг текущего
	from := models.DateOnly(now).AddDate(0, -1, 0)
	to := models.DateOnly(now).AddDate(0, 2, 0)

	lessons, err := c.fetchLessons(ctx, from, to, false)
	if err != nil {
		return err
	}

	return tui.Run(lessons, now)
}

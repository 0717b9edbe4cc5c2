package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
)

// syncWindowDays — сколько дней расписания держит офлайн-кеш
const syncWindowDays = 30

// RunSync обновляет офлайн-кеш занятий на ближайшие syncWindowDays дней
func (c *Cli) RunSync(ctx context.Context) error {
	from := models.DateOnly(time.Now())
	to := from.AddDate(0, 0, syncWindowDays)

	fmt.Printf("Syncing schedule %s — %s...\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	lessons, err := c.apiClient.Lessons(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to fetch lessons: %w", err)
	}

	if err := c.cache.ReplaceRange(ctx, from, to, lessons); err != nil {
		return fmt.Errorf("failed to update cache: %w", err)
	}

	fmt.Printf("✓ Cached %d lesson(s).\n", len(lessons))
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/tutorhub/internal/client/cache"
	"github.com/tutorhub/tutorhub/internal/client/session"
)

// RunStatus показывает состояние аутентификации и кеша расписания
func (c *Cli) RunStatus(ctx context.Context) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			fmt.Println("Status: Not authenticated")
			fmt.Println()
			fmt.Println("Run 'tutorhub login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	fmt.Println("Status: Authenticated")
	fmt.Printf("Email: %s\n", sess.Email)
	fmt.Printf("Role: %s\n", sess.Role)
	fmt.Printf("Server: %s\n", c.apiClient.BaseURL())
	fmt.Printf("Token expires: %s (stored for %d day(s))\n",
		sess.AccessExpiresAt.Format(time.RFC3339), sess.TTLDays)

	remaining := time.Until(sess.AccessExpiresAt)
	if remaining > 0 {
		fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		fmt.Println("⚠️  Access token has expired. It will be refreshed on the next request.")
	}

	// Состояние офлайн-кеша
	fmt.Println()
	lastSync, err := c.cache.LastSync(ctx)
	if err != nil {
		if errors.Is(err, cache.ErrNotSynced) {
			fmt.Println("Offline cache: empty. Run 'tutorhub sync' to fill it.")
			return nil
		}
		fmt.Printf("Warning: failed to read cache state: %v\n", err)
		return nil
	}
	fmt.Printf("Offline cache: last synced %s\n", lastSync.Format(time.RFC3339))

	return nil
}

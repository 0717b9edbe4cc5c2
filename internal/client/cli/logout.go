package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tutorhub/tutorhub/internal/client/session"
)

// RunLogout отзывает refresh токен на сервере (best effort)
// и всегда очищает локальную сессию
func (c *Cli) RunLogout(ctx context.Context) error {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	// Уведомляем сервер; недоступность сервера не мешает выходу
	if err := c.apiClient.Logout(ctx, sess.RefreshToken); err != nil {
		slog.Warn("failed to logout on server", "error", err)
	}

	if err := c.sessions.Clear(ctx); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}

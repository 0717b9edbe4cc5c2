package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorhub/tutorhub/internal/client/api"
	"github.com/tutorhub/tutorhub/internal/client/session"
	"github.com/tutorhub/tutorhub/internal/validation"
)

// RunLogin выполняет вход и сохраняет сессию локально
func (c *Cli) RunLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	// Запрашиваем email
	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	// Запрашиваем пароль
	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, email, password)
	if err != nil {
		return err
	}

	now := time.Now()
	expires := resp.Tokens.Access.Expires
	if expires.IsZero() {
		// Сервер не прислал явный срок — берем exp из самого токена
		expires, err = api.TokenExpiry(resp.Tokens.Access.Token)
		if err != nil {
			return fmt.Errorf("access token has no usable expiry: %w", err)
		}
	}

	// Сохраняем пару токенов вместе с кешированной записью пользователя
	sess := &session.Session{
		UserID:          resp.User.ID,
		Email:           resp.User.Email,
		Name:            resp.User.Name,
		Role:            resp.User.Role,
		AccessToken:     resp.Tokens.Access.Token,
		RefreshToken:    resp.Tokens.Refresh.Token,
		AccessExpiresAt: expires,
		TTLDays:         session.TTLDays(now, expires),
		ClientID:        c.clientID(ctx),
	}

	if err := c.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Name: %s (%s)\n", sess.Name, sess.Role)
	fmt.Printf("Access token expires: %s\n", expires.Format(time.RFC3339))

	return nil
}

// clientID возвращает идентификатор этой установки клиента,
// сохраняя его между логинами
func (c *Cli) clientID(ctx context.Context) string {
	if sess, err := c.sessions.Get(ctx); err == nil && sess.ClientID != "" {
		return sess.ClientID
	}
	return uuid.New().String()
}

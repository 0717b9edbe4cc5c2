package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tutorhub/tutorhub/internal/client/session"
	pkgapi "github.com/tutorhub/tutorhub/pkg/api"
)

// refreshEndpoint — фиксированный эндпоинт обновления пары токенов
const refreshEndpoint = "/auth/refresh-tokens"

// refreshTokens обновляет access токен, гарантируя не более одного
// сетевого вызова refresh одновременно. Все вызовы, пришедшие во время
// обновления, ждут его завершения и получают общий результат.
func (c *Client) refreshTokens(ctx context.Context) (string, error) {
	c.mu.Lock()
	if call := c.refresh; call != nil {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	c.refresh = call
	c.mu.Unlock()

	call.token, call.err = c.doRefresh(ctx)
	close(call.done)

	// Сбрасываем handle независимо от исхода: следующий 401 начнет
	// новое обновление, а не получит устаревший результат.
	c.mu.Lock()
	c.refresh = nil
	c.mu.Unlock()

	return call.token, call.err
}

// doRefresh выполняет сам протокол обновления.
// Любая ошибка здесь фатальна для сессии: локальное состояние очищается
// и вызывающий код должен вернуть пользователя на вход.
func (c *Client) doRefresh(ctx context.Context) (string, error) {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		c.expireSession(ctx)
		return "", fmt.Errorf("%w: no stored session", ErrSessionExpired)
	}
	if sess.RefreshToken == "" {
		c.expireSession(ctx)
		return "", fmt.Errorf("%w: no refresh token", ErrSessionExpired)
	}

	resp, err := c.postRefresh(ctx, sess.RefreshToken)
	if err != nil {
		c.expireSession(ctx)
		return "", fmt.Errorf("%w: %s", ErrSessionExpired, err)
	}

	pair, err := resp.Pair()
	if err != nil {
		c.expireSession(ctx)
		return "", fmt.Errorf("%w: invalid refresh response: %s", ErrSessionExpired, err)
	}

	now := time.Now()
	expires := pair.Access.Expires
	if expires.IsZero() {
		// Сервер не прислал явный срок — берем exp из самого токена
		expires, err = TokenExpiry(pair.Access.Token)
		if err != nil {
			c.expireSession(ctx)
			return "", fmt.Errorf("%w: access token has no expiry: %s", ErrSessionExpired, err)
		}
	}

	sess.AccessToken = pair.Access.Token
	if pair.Refresh.Token != "" {
		sess.RefreshToken = pair.Refresh.Token
	}
	sess.AccessExpiresAt = expires
	sess.TTLDays = session.TTLDays(now, expires)

	if err := c.sessions.Save(ctx, sess); err != nil {
		c.expireSession(ctx)
		return "", fmt.Errorf("%w: failed to save refreshed session: %s", ErrSessionExpired, err)
	}

	slog.Debug("token refreshed", "expires", expires, "ttl_days", sess.TTLDays)

	return sess.AccessToken, nil
}

// postRefresh вызывает refresh-эндпоинт напрямую, минуя callRaw:
// без bearer заголовка и без каскадных повторов.
func (c *Client) postRefresh(ctx context.Context, refreshToken string) (*pkgapi.RefreshResponse, error) {
	jsonData, err := json.Marshal(pkgapi.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshEndpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("refresh rejected (%d): %s", resp.StatusCode, errorMessage(respBody, resp.Status))
	}

	var refreshResp pkgapi.RefreshResponse
	if err := json.Unmarshal(respBody, &refreshResp); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}

	return &refreshResp, nil
}

// expireSession очищает все сохраненное состояние сессии:
// пару токенов и кешированную запись пользователя разом.
func (c *Client) expireSession(ctx context.Context) {
	if err := c.sessions.Clear(ctx); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		slog.Warn("failed to clear session", "error", err)
	}
}

// TokenExpiry извлекает exp из JWT без проверки подписи.
// Подпись проверяет сервер; клиенту нужен только срок действия.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}

	return exp.Time, nil
}

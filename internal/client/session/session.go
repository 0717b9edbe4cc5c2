package session

import (
	"context"
	"errors"
	"time"
)

// Common session store errors
var (
	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session not found")
)

// Session представляет сохраненную сессию пользователя: пару токенов
// и кешированную запись пользователя. Хранится целиком и целиком же
// очищается при logout или фатальной ошибке обновления токена.
type Session struct {
	UserID          string    `json:"user_id"`           // UUID пользователя
	Email           string    `json:"email"`             // email пользователя
	Name            string    `json:"name"`              // отображаемое имя
	Role            string    `json:"role"`              // admin | tutor | student
	AccessToken     string    `json:"access_token"`      // bearer токен
	RefreshToken    string    `json:"refresh_token"`     // токен обновления
	AccessExpiresAt time.Time `json:"access_expires_at"` // истечение access токена
	TTLDays         int       `json:"ttl_days"`          // срок хранения access токена в целых днях
	ClientID        string    `json:"client_id"`         // UUID этой установки клиента
}

// AccessValid проверяет, что access токен еще действителен.
// Просроченный токен не прикрепляется к запросам: запрос уходит без
// Authorization и сервер ответит 401, что запустит обновление.
func (s *Session) AccessValid(now time.Time) bool {
	if s.AccessToken == "" {
		return false
	}
	if s.AccessExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.AccessExpiresAt)
}

// TTLDays возвращает целое число дней между now и expires.
// Именно столько живет сохраненный access токен.
func TTLDays(now, expires time.Time) int {
	if !expires.After(now) {
		return 0
	}
	return int(expires.Sub(now).Hours() / 24)
}

// Store defines interface for storing the session on the client.
// Реализуется дважды (файл и BoltDB) — контрактом является интерфейс,
// а не механизм хранения.
type Store interface {
	// Save stores the session, overwriting any previous one
	Save(ctx context.Context, sess *Session) error

	// Get retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	Get(ctx context.Context) (*Session, error)

	// Clear removes the stored session (logout or fatal refresh failure).
	// Returns ErrSessionNotFound if nothing is stored.
	Clear(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

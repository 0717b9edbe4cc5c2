package api

import (
	"errors"
	"time"
)

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (передается только по TLS)
}

// TokenData представляет один выданный токен с временем истечения
type TokenData struct {
	Token   string    `json:"token"`             // сам токен
	Expires time.Time `json:"expires,omitempty"` // время истечения (UTC)
}

// TokenPair представляет пару access/refresh токенов
type TokenPair struct {
	Access  TokenData `json:"access"`  // короткоживущий bearer токен
	Refresh TokenData `json:"refresh"` // долгоживущий токен обновления
}

// RefreshRequest представляет запрос на обновление пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"` // текущий refresh токен
}

// ErrMissingAccessToken возвращается, когда ответ сервера не содержит access токен
var ErrMissingAccessToken = errors.New("response contains no access token")

// RefreshResponse представляет ответ refresh-эндпоинта.
// Сервер может вернуть пару либо обернутой в поле "tokens",
// либо той же формой без обертки — Pair нормализует обе.
type RefreshResponse struct {
	Tokens  *TokenPair `json:"tokens,omitempty"`
	Access  *TokenData `json:"access,omitempty"`
	Refresh *TokenData `json:"refresh,omitempty"`
}

// Pair возвращает нормализованную пару токенов из любой формы ответа
func (r *RefreshResponse) Pair() (*TokenPair, error) {
	pair := r.Tokens
	if pair == nil {
		pair = &TokenPair{}
		if r.Access != nil {
			pair.Access = *r.Access
		}
		if r.Refresh != nil {
			pair.Refresh = *r.Refresh
		}
	}
	if pair.Access.Token == "" {
		return nil, ErrMissingAccessToken
	}
	return pair, nil
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	User   UserData  `json:"user"`   // данные пользователя
	Tokens TokenPair `json:"tokens"` // выданная пара токенов
}

// LogoutRequest представляет запрос на выход
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"` // refresh токен для отзыва
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // человекочитаемое сообщение
}

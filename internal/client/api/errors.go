package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSessionExpired возвращается, когда обновление токена невозможно:
// сессия очищена, пользователь должен войти заново.
var ErrSessionExpired = errors.New("session expired, please login again")

// NoContent is returned by CallRaw for successful responses with an empty body
var NoContent = json.RawMessage{}

// APIError представляет ошибку сервера (любой не-2xx кроме 403)
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// ForbiddenError представляет отказ в доступе (403).
// Никогда не ведет к повторному запросу.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Message)
}

// errorMessage извлекает сообщение из JSON тела ошибки.
// Возвращает fallback, если тело пустое или не содержит message/error.
func errorMessage(body []byte, fallback string) string {
	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err == nil {
		if resp.Message != "" {
			return resp.Message
		}
		if resp.Error != "" {
			return resp.Error
		}
	}
	return fallback
}

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
	"sync"
	"time"

	"github.com/tutorhub/tutorhub/internal/client/session"
)

// DefaultBaseURL используется, когда адрес сервера не задан ни флагом,
// ни переменной окружения.
const DefaultBaseURL = "https://api.tutorhub.ru"

// Client представляет HTTP клиент для взаимодействия с сервером.
// Прикрепляет bearer токен из хранилища сессии к каждому запросу и
// прозрачно обновляет его при 401 (не более одного повтора на запрос).
type Client struct {
	httpClient *http.Client
	sessions   session.Store
	baseURL    string

	// Единственное место координации во всем клиенте: одновременные 401
	// сходятся на одном сетевом вызове refresh и разделяют его результат.
	mu      sync.Mutex
	refresh *refreshCall
}

// refreshCall представляет одно выполняющееся обновление токена.
// Пришедшие во время обновления вызовы ждут done и читают общий результат.
type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// NewClient создает новый API клиент
func NewClient(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL возвращает настроенный адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call выполняет запрос и декодирует JSON ответ в result.
// При пустом теле ответа result остается нетронутым.
// Если тело не является валидным JSON, а result — *string,
// туда помещается сырой текст ответа.
func (c *Client) Call(ctx context.Context, method, endpoint string, body, result any) error {
	raw, err := c.CallRaw(ctx, method, endpoint, nil, body)
	if err != nil {
		return err
	}

	if result == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, result); err != nil {
		// Сервер может вернуть не-JSON тело на успешный запрос
		if sp, ok := result.(*string); ok {
			*sp = string(raw)
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// CallRaw выполняет запрос и возвращает сырое тело успешного ответа.
// Пустое тело обозначается сентинелом NoContent.
func (c *Client) CallRaw(ctx context.Context, method, endpoint string, headers http.Header, body any) (json.RawMessage, error) {
	var jsonData []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		jsonData = data
	}

	return c.callRaw(ctx, method, endpoint, headers, jsonData, true)
}

// callRaw выполняет один HTTP запрос.
// allowRetry=true разрешает единственный повтор после обновления токена;
// повторный запрос выполняется с allowRetry=false и больше не повторяется.
func (c *Client) callRaw(ctx context.Context, method, endpoint string, headers http.Header, jsonData []byte, allowRetry bool) (json.RawMessage, error) {
	url := c.baseURL + endpoint

	var bodyReader io.Reader
	if jsonData != nil {
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if jsonData != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Прикрепляем текущий access токен, если он есть и не истек
	if sess, err := c.sessions.Get(ctx); err == nil {
		if sess.AccessValid(time.Now()) {
			req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		}
		if sess.ClientID != "" {
			req.Header.Set("X-Client-Id", sess.ClientID)
		}
	} else if !errors.Is(err, session.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	// Заголовки вызывающего кода перекрывают умолчания
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized && allowRetry:
		// Обновляем токен и повторяем идентичный запрос один раз
		if _, err := c.refreshTokens(ctx); err != nil {
			return nil, err
		}
		slog.Debug("retrying request after token refresh", "method", method, "endpoint", endpoint)
		return c.callRaw(ctx, method, endpoint, headers, jsonData, false)

	case resp.StatusCode == http.StatusForbidden:
		return nil, &ForbiddenError{
			Message: errorMessage(respBody, "insufficient privilege"),
		}

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, resp.Status),
		}
	}

	if len(respBody) == 0 {
		return NoContent, nil
	}

	return json.RawMessage(respBody), nil
}

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tutorhub/tutorhub/internal/models"
	"github.com/tutorhub/tutorhub/internal/schedule"
	pkgapi "github.com/tutorhub/tutorhub/pkg/api"
)

// dateLayout — формат календарной даты в API
const dateLayout = "2006-01-02"

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, email, password string) (*pkgapi.LoginResponse, error) {
	var resp pkgapi.LoginResponse
	req := pkgapi.LoginRequest{Email: email, Password: password}
	if err := c.Call(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh токен на сервере
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := pkgapi.LogoutRequest{RefreshToken: refreshToken}
	if err := c.Call(ctx, http.MethodPost, "/auth/logout", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Me возвращает запись текущего пользователя
func (c *Client) Me(ctx context.Context) (*pkgapi.UserData, error) {
	var resp pkgapi.UserData
	if err := c.Call(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// Lessons возвращает занятия за период [from, to] включительно.
// Записи с нечитаемой датой или временем пропускаются с предупреждением,
// а не ломают весь список.
func (c *Client) Lessons(ctx context.Context, from, to time.Time) ([]models.Lesson, error) {
	query := url.Values{}
	query.Set("from", from.Format(dateLayout))
	query.Set("to", to.Format(dateLayout))

	var resp pkgapi.LessonsResponse
	endpoint := "/lessons?" + query.Encode()
	if err := c.Call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("lessons request failed: %w", err)
	}

	lessons := make([]models.Lesson, 0, len(resp.Results))
	for _, data := range resp.Results {
		lesson, err := lessonFromData(data)
		if err != nil {
			slog.Warn("skipping malformed lesson record", "id", data.ID, "error", err)
			continue
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}

// Users возвращает страницу списка пользователей (только admin)
func (c *Client) Users(ctx context.Context, page, limit int) (*pkgapi.UsersResponse, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("limit", fmt.Sprintf("%d", limit))

	var resp pkgapi.UsersResponse
	endpoint := "/users?" + query.Encode()
	if err := c.Call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("users request failed: %w", err)
	}
	return &resp, nil
}

// CreateUser создает нового пользователя (только admin)
func (c *Client) CreateUser(ctx context.Context, req pkgapi.CreateUserRequest) (*pkgapi.UserData, error) {
	var resp pkgapi.UserData
	if err := c.Call(ctx, http.MethodPost, "/users", req, &resp); err != nil {
		return nil, fmt.Errorf("create user request failed: %w", err)
	}
	return &resp, nil
}

// UpdateUser частично обновляет пользователя (только admin)
func (c *Client) UpdateUser(ctx context.Context, id string, req pkgapi.UpdateUserRequest) (*pkgapi.UserData, error) {
	var resp pkgapi.UserData
	if err := c.Call(ctx, http.MethodPatch, "/users/"+id, req, &resp); err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &resp, nil
}

// DeleteUser удаляет пользователя (только admin)
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.Call(ctx, http.MethodDelete, "/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}
	return nil
}

// lessonFromData преобразует запись сервера в доменную модель,
// валидируя дату, диапазон времени и статус на входе.
func lessonFromData(data pkgapi.LessonData) (models.Lesson, error) {
	date, err := time.ParseInLocation(dateLayout, data.Date, time.Local)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("invalid date %q: %w", data.Date, err)
	}

	if _, _, err := schedule.ParseTimeRange(data.Time); err != nil {
		return models.Lesson{}, fmt.Errorf("invalid time range: %w", err)
	}

	status := models.LessonStatus(data.Status)
	if data.Status != "" && !status.Valid() {
		return models.Lesson{}, fmt.Errorf("unknown status %q", data.Status)
	}

	return models.Lesson{
		ID:        data.ID,
		Date:      date,
		TimeRange: data.Time,
		Subject:   data.Subject,
		Tutor: models.Tutor{
			ID:   data.TutorID,
			Name: data.TutorName,
		},
		MeetingLink: data.MeetingLink,
		Status:      status,
	}, nil
}

package api

// UserData представляет пользователя в ответах сервера
type UserData struct {
	ID    string `json:"id"`    // UUID пользователя
	Email string `json:"email"` // уникальный email
	Name  string `json:"name"`  // отображаемое имя
	Role  string `json:"role"`  // admin | tutor | student
}

// CreateUserRequest представляет запрос на создание пользователя (только admin)
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserRequest представляет частичное обновление пользователя.
// nil-поля не отправляются и остаются без изменений на сервере.
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// UsersResponse представляет страницу списка пользователей
type UsersResponse struct {
	Results      []UserData `json:"results"`
	Page         int        `json:"page"`
	Limit        int        `json:"limit"`
	TotalPages   int        `json:"totalPages"`
	TotalResults int        `json:"totalResults"`
}

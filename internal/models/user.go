package models

// Role представляет роль пользователя в системе
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

// Valid проверяет, что роль является одной из известных
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleStudent:
		return true
	}
	return false
}

// User представляет пользователя системы
type User struct {
	ID    string `json:"id"`    // UUID пользователя
	Email string `json:"email"` // уникальный email
	Name  string `json:"name"`  // отображаемое имя
	Role  Role   `json:"role"`  // admin | tutor | student
}

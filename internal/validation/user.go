package validation

import (
	"fmt"
	"regexp"

	"github.com/tutorhub/tutorhub/internal/models"
)

// EmailPattern определяет допустимый формат email.
// Намеренно нестрогая проверка: окончательная валидация на сервере.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
)

// ValidateEmail проверяет, что email соответствует требованиям
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateRole проверяет, что роль является одной из известных системе
func ValidateRole(role string) error {
	if role == "" {
		return fmt.Errorf("role cannot be empty")
	}

	if !models.Role(role).Valid() {
		return fmt.Errorf("unknown role %q (expected admin, tutor or student)", role)
	}

	return nil
}

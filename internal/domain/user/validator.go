package user

import (
	"fmt"
	"unicode"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(username, password string) error
	ValidateUsername(username string) error
	ValidatePassword(password string) error
}

type RegisterValidator struct{}

func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{}
}

func (v *RegisterValidator) ValidateRegister(username, password string) error {
	if err := v.ValidateUsername(username); err != nil {
		return fmt.Errorf("username validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

func (v *RegisterValidator) ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

func (v *RegisterValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	return nil
}

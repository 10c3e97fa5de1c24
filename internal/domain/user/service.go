package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password string) (int, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register создает пользователя; пароль хранится только как bcrypt-хэш.
func (s *Service) Register(ctx context.Context, username, password string) (int, error) {
	if err := s.validator.ValidateRegister(username, password); err != nil {
		s.log.Debug("validation failed", "username", username, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return 0, ErrAlreadyExists
		}
		s.log.Error("failed to create user", "username", username, "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", userID, "username", username)

	return userID, nil
}

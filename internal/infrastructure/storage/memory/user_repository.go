package memory

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"phishguard/internal/domain/user"
)

type UserRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		storage: storage,
		log:     log,
	}
}

func (r *UserRepository) Create(_ context.Context, username, passwordHash string) (int, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userIDByName[username]; taken {
		return 0, user.ErrAlreadyExists
	}

	id := s.nextUserID
	s.nextUserID++

	s.users[id] = user.User{
		ID:        id,
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.userIDByName[username] = id

	return id, nil
}

func (r *UserRepository) Get(_ context.Context, id int) (*user.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}

	result := stored
	return &result, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByName[username]
	if !ok {
		return nil, user.ErrNotFound
	}

	stored := s.users[id]
	result := stored
	return &result, nil
}

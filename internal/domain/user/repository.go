package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	Get(ctx context.Context, id int) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

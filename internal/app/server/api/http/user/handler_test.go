package user

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"phishguard/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, password string) (int, error) {
	args := m.Called(ctx, username, password)
	return args.Int(0), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Register(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Register", mock.Anything, "alice", "password123").Return(42, nil)

	out, err := h.register(context.Background(), &registerInput{Body: registerRequest{
		Username: "alice",
		Password: "password123",
	}})
	assert.NoError(t, err)
	assert.Equal(t, 42, out.Body.ID)
	assert.Equal(t, "Ok", out.Body.Status)

	svc.AssertExpectations(t)
}

func TestHandler_Register_InvalidInput(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Register", mock.Anything, "bad user", "password123").
		Return(0, fmt.Errorf("%w: username can only contain letters, digits, '_', '-', '.'", user.ErrInvalidInput))

	_, err := h.register(context.Background(), &registerInput{Body: registerRequest{
		Username: "bad user",
		Password: "password123",
	}})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	svc.AssertExpectations(t)
}

func TestHandler_Register_Duplicate(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Register", mock.Anything, "alice", "password123").Return(0, user.ErrAlreadyExists)

	_, err := h.register(context.Background(), &registerInput{Body: registerRequest{
		Username: "alice",
		Password: "password123",
	}})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Contains(t, err.Error(), "Username already taken")

	svc.AssertExpectations(t)
}

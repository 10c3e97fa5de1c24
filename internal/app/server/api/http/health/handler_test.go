package health

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHandler_healthCheck(t *testing.T) {
	log := slog.Default()
	middleware := huma.Middlewares{}
	handler := NewHandler(log, middleware)

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "OK", output.Body.Status)
}

func TestNewHandler(t *testing.T) {
	log := slog.Default()
	middleware := huma.Middlewares{}

	handler := NewHandler(log, middleware)

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}

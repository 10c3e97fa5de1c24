package feedback

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phishguard/internal/domain/feedback"
	"phishguard/internal/domain/scan"
)

type Handler struct {
	service    feedback.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service feedback.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.submitOp(), h.submit)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) submit(ctx context.Context, input *submitInput) (*submitOutput, error) {
	fb, err := h.service.Submit(ctx, input.Body.ScanID, input.Body.IsCorrect, input.Body.Comment)
	if err != nil {
		switch {
		case errors.Is(err, scan.ErrNotFound):
			return nil, huma.Error404NotFound("Scan not found")
		case errors.Is(err, feedback.ErrAlreadyExists):
			return nil, huma.Error400BadRequest("Feedback already submitted for this scan")
		default:
			return nil, huma.Error500InternalServerError("Failed to submit feedback")
		}
	}

	return &submitOutput{Body: *fb}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	fb, err := h.service.GetByScanID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return nil, huma.Error404NotFound("Feedback not found")
		}
		return nil, huma.Error500InternalServerError("Failed to fetch feedback")
	}

	return &getOutput{Body: *fb}, nil
}

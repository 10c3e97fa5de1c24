package scan

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phishguard/internal/domain/scan"
)

// Лимит на сам файл; превышение отклоняется до запуска скорера.
const maxImageSize = 10 << 20

type Handler struct {
	service    scan.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service scan.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statsOp(), h.stats)
	huma.Register(api, h.analyzeURLOp(), h.analyzeURL)
	huma.Register(api, h.analyzeScreenshotOp(), h.analyzeScreenshot)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) stats(ctx context.Context, _ *struct{}) (*statsOutput, error) {
	stats, err := h.service.Stats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch stats")
	}

	return &statsOutput{Body: stats}, nil
}

func (h *Handler) analyzeURL(ctx context.Context, input *analyzeURLInput) (*analyzeOutput, error) {
	if strings.TrimSpace(input.Body.URL) == "" {
		return nil, huma.Error400BadRequest("URL is required")
	}

	result, err := h.service.AnalyzeURL(ctx, input.Body.URL)
	if err != nil {
		if errors.Is(err, scan.ErrInvalidInput) {
			return nil, huma.Error400BadRequest("URL is required")
		}
		return nil, huma.Error500InternalServerError("Analysis failed")
	}

	return &analyzeOutput{Body: result}, nil
}

func (h *Handler) analyzeScreenshot(ctx context.Context, input *analyzeScreenshotInput) (*analyzeOutput, error) {
	files := input.RawBody.File["image"]
	if len(files) == 0 {
		return nil, huma.Error400BadRequest("Image file is required")
	}

	fh := files[0]
	if fh.Size > maxImageSize {
		return nil, huma.Error400BadRequest("Image exceeds the 10MB limit")
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return nil, huma.Error400BadRequest("Only image files are allowed")
	}

	f, err := fh.Open()
	if err != nil {
		h.log.Error("failed to open upload", "filename", fh.Filename, "error", err)
		return nil, huma.Error500InternalServerError("Screenshot analysis failed")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.log.Error("failed to read upload", "filename", fh.Filename, "error", err)
		return nil, huma.Error500InternalServerError("Screenshot analysis failed")
	}

	result, err := h.service.AnalyzeScreenshot(ctx, fh.Filename, data)
	if err != nil {
		return nil, huma.Error500InternalServerError("Screenshot analysis failed")
	}

	return &analyzeOutput{Body: result}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	if input.Type != "" {
		scans, err := h.service.ListByType(ctx, scan.ScanType(input.Type), input.Limit)
		if err != nil {
			if errors.Is(err, scan.ErrInvalidInput) {
				return nil, huma.Error400BadRequest("Unknown scan type")
			}
			return nil, huma.Error500InternalServerError("Failed to fetch scan history")
		}
		return &listOutput{Body: scans}, nil
	}

	scans, err := h.service.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch scan history")
	}

	return &listOutput{Body: scans}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	record, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, scan.ErrNotFound) {
			return nil, huma.Error404NotFound("Scan not found")
		}
		return nil, huma.Error500InternalServerError("Failed to fetch scan")
	}

	return &getOutput{Body: *record}, nil
}

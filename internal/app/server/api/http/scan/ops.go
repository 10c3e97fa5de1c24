package scan

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Запас сверх лимита файла в 10 MiB на границы multipart и прочие поля формы.
const maxScreenshotBodyBytes = 11 << 20

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "stats",
		Method:      http.MethodGet,
		Path:        "/api/stats",
		Summary:     "Счетчики сканов по вердиктам",
		Tags:        []string{"stats"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) analyzeURLOp() huma.Operation {
	return huma.Operation{
		OperationID: "analyze-url",
		Method:      http.MethodPost,
		Path:        "/api/analyze/url",
		Summary:     "Проанализировать URL",
		Description: "Прогоняет URL через эвристический скорер и сохраняет скан.",
		Tags:        []string{"analysis"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) analyzeScreenshotOp() huma.Operation {
	return huma.Operation{
		OperationID:  "analyze-screenshot",
		Method:       http.MethodPost,
		Path:         "/api/analyze/screenshot",
		Summary:      "Проанализировать скриншот",
		Description:  "Принимает multipart-поле image (до 10 MiB, только image/*), прогоняет мок-скорер и сохраняет скан.",
		Tags:         []string{"analysis"},
		MaxBodyBytes: maxScreenshotBodyBytes,
		Middlewares:  h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "scans-list",
		Method:      http.MethodGet,
		Path:        "/api/scans",
		Summary:     "История сканов",
		Description: "Свежие сканы первыми; limit/offset, опциональный фильтр по типу.",
		Tags:        []string{"scans"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "scans-get",
		Method:      http.MethodGet,
		Path:        "/api/scans/{id}",
		Summary:     "Получить скан",
		Tags:        []string{"scans"},
		Middlewares: h.middleware,
	}
}

package feedback

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) submitOp() huma.Operation {
	return huma.Operation{
		OperationID: "feedback-submit",
		Method:      http.MethodPost,
		Path:        "/api/feedback",
		Summary:     "Оставить отзыв на скан",
		Description: "Не больше одного отзыва на скан; повтор возвращает 400.",
		Tags:        []string{"feedback"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "feedback-get",
		Method:      http.MethodGet,
		Path:        "/api/scans/{id}/feedback",
		Summary:     "Отзыв на скан",
		Tags:        []string{"feedback"},
		Middlewares: h.middleware,
	}
}

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse — модель ошибки API: {"message": "...", "errors": [...]}.
type ErrorResponse struct {
	status int

	Message string   `json:"message" doc:"Human-readable error message"`
	Errors  []string `json:"errors,omitempty" doc:"Optional validation details"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func (e *ErrorResponse) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		// Контракт API отдает ошибки валидации как 400.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}

		return &ErrorResponse{
			status:  status,
			Message: message,
			Errors:  details,
		}
	}
}

package feedback

import (
	"phishguard/internal/domain/feedback"
)

type submitInput struct {
	Body submitRequest
}

type submitRequest struct {
	ScanID    int     `json:"scanId" minimum:"1" doc:"ID скана, к которому относится отзыв"`
	IsCorrect bool    `json:"isCorrect" doc:"Был ли вердикт верным"`
	Comment   *string `json:"comment,omitempty" doc:"Необязательный комментарий"`
}

type submitOutput struct {
	Body feedback.Feedback
}

type getInput struct {
	ID int `path:"id" example:"1" doc:"ID скана"`
}

type getOutput struct {
	Body feedback.Feedback
}

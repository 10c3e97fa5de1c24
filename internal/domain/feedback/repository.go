package feedback

import (
	"context"
)

// Repository хранит отзывы. Create обязан быть атомарным insert-if-absent по
// scan id: параллельные сабмиты на один скан не должны давать две записи.
type Repository interface {
	Create(ctx context.Context, fb *Feedback) (int, error)
	GetByScanID(ctx context.Context, scanID int) (*Feedback, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phishguard/internal/domain/feedback"
)

const uniqueViolation = "23505"

type FeedbackRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFeedbackRepository(storage *Storage, log *slog.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		pool: storage.Pool(),
		log:  log,
	}
}

// Create полагается на уникальный индекс feedback.scan_id: повторная вставка
// по тому же скану откатывается базой, а не read-then-write проверкой.
func (r *FeedbackRepository) Create(ctx context.Context, fb *feedback.Feedback) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO feedback (scan_id, is_correct, comment, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		fb.ScanID, fb.IsCorrect, fb.Comment, fb.CreatedAt).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, feedback.ErrAlreadyExists
		}
		return 0, fmt.Errorf("insert feedback: %w", err)
	}

	return id, nil
}

func (r *FeedbackRepository) GetByScanID(ctx context.Context, scanID int) (*feedback.Feedback, error) {
	var fb feedback.Feedback
	err := r.pool.QueryRow(ctx,
		`SELECT id, scan_id, is_correct, comment, created_at
		 FROM feedback WHERE scan_id = $1`, scanID).
		Scan(&fb.ID, &fb.ScanID, &fb.IsCorrect, &fb.Comment, &fb.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, feedback.ErrNotFound
		}
		return nil, fmt.Errorf("select feedback: %w", err)
	}

	return &fb, nil
}

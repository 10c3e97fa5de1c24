package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"phishguard/internal/domain/scan"
)

type Servicer interface {
	Submit(ctx context.Context, scanID int, isCorrect bool, comment *string) (*Feedback, error)
	GetByScanID(ctx context.Context, scanID int) (*Feedback, error)
}

type Service struct {
	repo  Repository
	scans scan.Repository
	log   *slog.Logger
}

func NewService(repo Repository, scans scan.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		scans: scans,
		log:   log.With("component", "feedback_service"),
	}
}

// Submit создает отзыв на скан. Скан должен существовать, отзыв на скан
// допускается только один; повторная попытка возвращает ErrAlreadyExists.
func (s *Service) Submit(ctx context.Context, scanID int, isCorrect bool, comment *string) (*Feedback, error) {
	if _, err := s.scans.Get(ctx, scanID); err != nil {
		if errors.Is(err, scan.ErrNotFound) {
			return nil, scan.ErrNotFound
		}
		s.log.Error("failed to check scan", "scan_id", scanID, "error", err)
		return nil, fmt.Errorf("check scan: %w", err)
	}

	fb := &Feedback{
		ScanID:    scanID,
		IsCorrect: isCorrect,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	id, err := s.repo.Create(ctx, fb)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		s.log.Error("failed to create feedback", "scan_id", scanID, "error", err)
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	fb.ID = id

	s.log.Info("feedback submitted", "feedback_id", id, "scan_id", scanID, "is_correct", isCorrect)

	return fb, nil
}

func (s *Service) GetByScanID(ctx context.Context, scanID int) (*Feedback, error) {
	fb, err := s.repo.GetByScanID(ctx, scanID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get feedback", "scan_id", scanID, "error", err)
		return nil, fmt.Errorf("get feedback: %w", err)
	}

	return fb, nil
}

package memory

import (
	"context"

	"golang.org/x/exp/slog"

	"phishguard/internal/domain/feedback"
)

type FeedbackRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewFeedbackRepository(storage *Storage, log *slog.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		storage: storage,
		log:     log,
	}
}

// Create выполняет проверку и вставку под одной блокировкой: второй отзыв
// на тот же скан не пройдет даже при параллельных запросах.
func (r *FeedbackRepository) Create(_ context.Context, fb *feedback.Feedback) (int, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.feedbackByScan[fb.ScanID]; exists {
		return 0, feedback.ErrAlreadyExists
	}

	id := s.nextFeedbackID
	s.nextFeedbackID++

	stored := *fb
	stored.ID = id
	s.feedbacks[id] = stored
	s.feedbackByScan[fb.ScanID] = id

	return id, nil
}

func (r *FeedbackRepository) GetByScanID(_ context.Context, scanID int) (*feedback.Feedback, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.feedbackByScan[scanID]
	if !ok {
		return nil, feedback.ErrNotFound
	}

	stored := s.feedbacks[id]
	result := stored
	return &result, nil
}

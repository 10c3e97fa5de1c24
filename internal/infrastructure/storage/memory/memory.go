// Package memory — хранилище по умолчанию: мапы со сквозными целыми id,
// живет только в пределах процесса.
package memory

import (
	"sync"

	"phishguard/internal/domain/feedback"
	"phishguard/internal/domain/scan"
	"phishguard/internal/domain/user"
)

// Storage владеет всеми тремя коллекциями и их счетчиками. Репозитории
// делят один RWMutex: операция проверки+вставки выполняется атомарно.
type Storage struct {
	mu sync.RWMutex

	users     map[int]user.User
	scans     map[int]scan.Scan
	feedbacks map[int]feedback.Feedback

	// scan id -> feedback id, обеспечивает "не больше одного отзыва на скан"
	feedbackByScan  map[int]int
	userIDByName    map[string]int

	nextUserID     int
	nextScanID     int
	nextFeedbackID int
}

func New() *Storage {
	return &Storage{
		users:          make(map[int]user.User),
		scans:          make(map[int]scan.Scan),
		feedbacks:      make(map[int]feedback.Feedback),
		feedbackByScan: make(map[int]int),
		userIDByName:   make(map[string]int),
		nextUserID:     1,
		nextScanID:     1,
		nextFeedbackID: 1,
	}
}

func (s *Storage) Close() error {
	return nil
}

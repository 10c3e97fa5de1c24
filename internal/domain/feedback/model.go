package feedback

import "time"

type Feedback struct {
	ID        int       `json:"id"`
	ScanID    int       `json:"scanId"`
	IsCorrect bool      `json:"isCorrect"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

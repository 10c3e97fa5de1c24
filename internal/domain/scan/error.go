package scan

import "errors"

var (
	ErrNotFound     = errors.New("scan not found")
	ErrInvalidInput = errors.New("invalid scan input")
)

package feedback

import "errors"

var (
	ErrNotFound      = errors.New("feedback not found")
	ErrAlreadyExists = errors.New("feedback already exists for this scan")
)

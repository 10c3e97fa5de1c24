package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("username already taken")
	ErrInvalidInput  = errors.New("invalid input")
)

package models

import "errors"

var (
	ErrNotFound        = errors.New("complaint not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrValidation      = errors.New("validation error")
)

package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
	ErrForbidden      = errors.New("forbidden")
	ErrJobNotFound    = errors.New("job not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrEmptySelection = errors.New("selection is empty")
	ErrActionInFlight = errors.New("bulk action already in flight")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

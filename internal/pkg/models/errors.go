package models

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP status codes;
// usecases wrap them with context via fmt.Errorf("...: %w", err).
var (
	ErrValidation          = errors.New("validation failed")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrNotFound            = errors.New("not found")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotOwner            = errors.New("booking is not held by this driver")
	ErrInvalidOrExpired    = errors.New("invalid or expired code")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by any operation addressed at an id that does not
// exist. Controllers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// ValidationError covers missing or malformed request fields (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RateLimitedError is returned while a client IP is locked out of login (429).
type RateLimitedError struct {
	MinutesLeft int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many failed login attempts, try again in %d minutes", e.MinutesLeft)
}

// InvalidCredentialsError is a wrong password (401), distinct from a missing
// or stale session token.
type InvalidCredentialsError struct {
	AttemptsLeft int
}

func (e *InvalidCredentialsError) Error() string {
	if e.AttemptsLeft == 1 {
		return "invalid password, 1 attempt remaining"
	}
	return fmt.Sprintf("invalid password, %d attempts remaining", e.AttemptsLeft)
}

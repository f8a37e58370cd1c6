package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProjectNotFound    = errors.New("project not found")
	ErrClientNotFound     = errors.New("client not found")
)

// Session verification failures. Every one of them means "anonymous" to the
// HTTP layer; they are kept distinct for logging and metrics.
var (
	ErrSessionMissing  = fmt.Errorf("%w: session missing", ErrUnauthenticated)
	ErrSessionExpired  = fmt.Errorf("%w: session expired", ErrUnauthenticated)
	ErrSessionTampered = fmt.Errorf("%w: session tampered", ErrUnauthenticated)
	ErrSessionRevoked  = fmt.Errorf("%w: session revoked", ErrUnauthenticated)
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

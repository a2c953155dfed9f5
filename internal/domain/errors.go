package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every error returned by the core matches one of these with errors.Is.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidInput      = errors.New("invalid input")
)

var (
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrTrainerNotFound      = fmt.Errorf("trainer %w", ErrNotFound)
	ErrClientNotLinked      = fmt.Errorf("%w: trainer is not linked to this client", ErrPermissionDenied)
	ErrAuthenticationFailed = fmt.Errorf("user %w: invalid username or password", ErrNotFound)
)

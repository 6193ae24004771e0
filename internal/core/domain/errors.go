package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateTaxID     = errors.New("tax id already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("identity could not be resolved")
	ErrForbidden          = errors.New("access forbidden")
)

// NotFoundError carries the client-facing message for a missing entity and
// matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound builds a NotFoundError with the given message.
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

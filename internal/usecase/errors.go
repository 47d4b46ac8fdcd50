package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEntity      = errors.New("invalid entity")
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Error is a client-facing failure: Message is safe to return verbatim and
// Kind is one of the package sentinels.
type Error struct {
	Kind    error
	Message string
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func notFound(entity string, id int64) *Error {
	return newError(ErrNotFound, "%s not found with id %d", entity, id)
}

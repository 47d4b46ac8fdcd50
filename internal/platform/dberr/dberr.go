// Package dberr normalizes storage failures into sentinel errors that use
// cases can match without knowing the driver.
package dberr

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrConstraintViolation = errors.New("integrity constraint violation")
	ErrUnknownSortField    = errors.New("unknown sort field")
)

const (
	uniqueViolationCode      = pq.ErrorCode("23505")
	integrityConstraintClass = pq.ErrorClass("23")
)

// Translate maps driver errors onto the package sentinels. Errors that are
// not integrity failures are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch {
	case pqErr.Code == uniqueViolationCode:
		return &Violation{kind: ErrUniqueViolation, Constraint: pqErr.Constraint, cause: err}
	case pqErr.Code.Class() == integrityConstraintClass:
		return &Violation{kind: ErrConstraintViolation, Constraint: pqErr.Constraint, cause: err}
	default:
		return err
	}
}

// Violation carries the violated constraint name next to its kind.
type Violation struct {
	kind       error
	Constraint string
	cause      error
}

func NewViolation(kind error, constraint string) *Violation {
	return &Violation{kind: kind, Constraint: constraint}
}

func (v *Violation) Error() string {
	if v.Constraint == "" {
		return v.kind.Error()
	}
	return fmt.Sprintf("%s: %s", v.kind.Error(), v.Constraint)
}

func (v *Violation) Is(target error) bool {
	return target == v.kind
}

func (v *Violation) Unwrap() error {
	return v.cause
}

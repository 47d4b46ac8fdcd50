package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-api/internal/platform/dberr"
)

const integrityMessage = "Please verify the properties of team and players. One or more required properties are missing or invalid."

var errIntegrity = &Error{Kind: ErrIntegrityViolation, Message: integrityMessage}

// storageError wraps a repository failure. Schema constraint failures are
// also marked as ErrIntegrityViolation so they surface as client errors.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, dberr.ErrUniqueViolation), errors.Is(err, dberr.ErrConstraintViolation):
		return fmt.Errorf("%s: %w: %w", op, errIntegrity, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

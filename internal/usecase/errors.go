package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalid wraps a non-empty validation collection so that both
// ErrInvalidInput and the field map survive.
func invalid(errs validation.Errors) error {
	if errs.Empty() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
}

// storeErr maps integrity violations raised by the store onto ErrConflict.
func storeErr(op string, err error) error {
	if dberr.IsIntegrity(err) {
		return fmt.Errorf("%w: %s: %w", ErrConflict, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Package dberr classifies storage integrity violations so callers can tell
// them apart from validation failures.
package dberr

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

var (
	ErrUniqueViolation     = crerr.New("unique constraint violated")
	ErrForeignKeyViolation = crerr.New("foreign key constraint violated")
	ErrCheckViolation      = crerr.New("check constraint violated")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Classify marks Postgres integrity errors with the matching sentinel and
// keeps the constraint name in the message. Other errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	var class error
	switch string(pqErr.Code) {
	case codeUniqueViolation:
		class = ErrUniqueViolation
	case codeForeignKeyViolation:
		class = ErrForeignKeyViolation
	case codeCheckViolation:
		class = ErrCheckViolation
	default:
		return err
	}
	return crerr.Mark(crerr.Wrapf(err, "constraint %s", pqErr.Constraint), class)
}

// Unique builds the error memory stores return for a duplicate key.
func Unique(constraint string) error {
	return crerr.Mark(crerr.Newf("duplicate key violates %s", constraint), ErrUniqueViolation)
}

// ForeignKey builds the error memory stores return for a protected or
// missing reference.
func ForeignKey(constraint string) error {
	return crerr.Mark(crerr.Newf("reference violates %s", constraint), ErrForeignKeyViolation)
}

// IsIntegrity reports whether err is any integrity violation.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrUniqueViolation) ||
		errors.Is(err, ErrForeignKeyViolation) ||
		errors.Is(err, ErrCheckViolation)
}

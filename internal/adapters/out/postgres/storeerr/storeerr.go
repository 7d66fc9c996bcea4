// Package storeerr maps driver failures onto the error taxonomy of the core.
package storeerr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Wrap turns a driver error into errs.TransportError. Errors that already
// belong to the core taxonomy pass through unchanged.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	return errs.NewTransportError(operation, err)
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and wraps
// everything else like Wrap.
func NotFound(operation, param string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return Wrap(operation, err)
}

// IsUniqueViolation reports whether err is a postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isDomainError(err error) bool {
	for _, target := range []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
		errs.ErrVersionIsInvalid,
		errs.ErrStaleAllocation,
		errs.ErrTransport,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

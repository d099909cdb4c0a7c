package postgres

import (
	domainerrors "mastercraft/internal/domain/errors"
)

// translateWriteError converts constraint violations into domain errors.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details + ": already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details + ": invalid reference")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details + ": missing or invalid field")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

package errors

import (
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
)

var (
	// ErrInvalidBody is returned when the request body is not valid JSON
	ErrInvalidBody = pkgerrors.NewValidationError("invalid request body")

	// ErrDatabaseOperation is returned when database operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)

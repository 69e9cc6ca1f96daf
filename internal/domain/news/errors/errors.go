package errors

import (
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
)

var (
	// ErrInvalidLimit is returned when the limit query parameter is not an integer
	ErrInvalidLimit = pkgerrors.NewValidationError("limit must be an integer")
)

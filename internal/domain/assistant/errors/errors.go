package errors

import (
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
)

// MaxQueryLength bounds the question forwarded to the backend
const MaxQueryLength = 1000

var (
	// ErrInvalidBody is returned when the request body is not valid JSON
	ErrInvalidBody = pkgerrors.NewValidationError("invalid request body")

	// ErrEmptyQuery is returned for empty or whitespace-only queries
	ErrEmptyQuery = pkgerrors.NewValidationError("query is required")

	// ErrQueryTooLong is returned when the query exceeds MaxQueryLength characters
	ErrQueryTooLong = pkgerrors.NewValidationErrorf("query must be at most %d characters", MaxQueryLength)
)

package domain

import pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"

// ErrBackendUnavailable is returned when no backend credential is configured
var ErrBackendUnavailable = pkgerrors.NewServiceUnavailableError("generative backend is not configured")

package errors

import (
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a referenced or calling user does not exist
	ErrUserNotFound = pkgerrors.NewNotFoundError("user does not exist")

	// ErrOrganizationNotFound is returned when a referenced organization does not exist
	ErrOrganizationNotFound = pkgerrors.NewNotFoundError("organization does not exist")

	// ErrMissingToken is returned when no bearer token is supplied
	ErrMissingToken = pkgerrors.NewUnauthorizedError("missing bearer token")

	// ErrInvalidToken is returned when the bearer token cannot be verified
	ErrInvalidToken = pkgerrors.NewUnauthorizedError("invalid bearer token")

	// ErrUnknownSubject is returned when a verified token names a user that no longer exists
	ErrUnknownSubject = pkgerrors.NewUnauthorizedError("token subject is not a registered user")
)

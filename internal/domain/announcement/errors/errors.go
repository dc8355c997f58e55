package errors

import (
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

var (
	// ErrAnnouncementNotFound is returned when an announcement is absent or hidden from the caller
	ErrAnnouncementNotFound = pkgerrors.NewNotFoundError("announcement does not exist")

	// ErrCommentNotFound is returned when a comment is absent or belongs to another announcement
	ErrCommentNotFound = pkgerrors.NewNotFoundError("comment does not exist")

	// ErrSlugTaken is returned when another announcement already uses the slug
	ErrSlugTaken = pkgerrors.NewConflictError("announcement slug already in use")

	// ErrMissingID is returned when an update payload carries no identifier
	ErrMissingID = pkgerrors.NewValidationError("announcement id is required")

	// ErrEmptyHeadline is returned when the headline is blank
	ErrEmptyHeadline = pkgerrors.NewValidationError("headline is required")

	// ErrInvalidSlug is returned when the slug is blank or not lowercase-kebab
	ErrInvalidSlug = pkgerrors.NewValidationError("slug must be lowercase words separated by hyphens")

	// ErrInvalidStatus is returned for an unknown lifecycle status
	ErrInvalidStatus = pkgerrors.NewValidationError("status must be one of draft, published, archived")

	// ErrEmptyComment is returned when comment text is blank after sanitising
	ErrEmptyComment = pkgerrors.NewValidationError("comment text is required")

	// ErrEmptyQuery is returned when a search query is blank
	ErrEmptyQuery = pkgerrors.NewValidationError("search query is required")

	// ErrSearchUnavailable is returned when the full-text index cannot answer
	ErrSearchUnavailable = pkgerrors.NewServiceUnavailableError("search is temporarily unavailable")
)

package errors

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

var statusByKind = map[Kind]int{
	KindValidation:         fasthttp.StatusBadRequest,
	KindUnauthorized:       fasthttp.StatusUnauthorized,
	KindPermission:         fasthttp.StatusForbidden,
	KindNotFound:           fasthttp.StatusNotFound,
	KindConflict:           fasthttp.StatusConflict,
	KindServiceUnavailable: fasthttp.StatusServiceUnavailable,
}

// Mapper maps domain errors to HTTP status codes
type Mapper struct {
	logger zerolog.Logger
}

// NewMapper creates a new error mapper
func NewMapper(logger zerolog.Logger) *Mapper {
	return &Mapper{logger: logger.With().Str("component", "error_mapper").Logger()}
}

// MapErrorToHTTP maps an error to HTTP status code and client-facing message.
// Server-side failures are logged with their cause and reported with a generic message.
func (m *Mapper) MapErrorToHTTP(err error) (int, string) {
	if err == nil {
		return fasthttp.StatusOK, ""
	}

	kind := KindOf(err)
	if status, ok := statusByKind[kind]; ok {
		return status, err.Error()
	}

	event := m.logger.Error().Err(err).Str("error_type", string(kind))
	var causer interface{ Cause() error }
	if errors.As(err, &causer) && causer.Cause() != nil {
		event = event.AnErr("cause", causer.Cause())
	}

	switch kind {
	case KindDatabase, KindInternal:
		event.Msg("internal server error")
		return fasthttp.StatusInternalServerError, err.Error()
	default:
		event.Msg("unknown error")
		return fasthttp.StatusInternalServerError, "internal server error"
	}
}

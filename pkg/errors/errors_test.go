package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: NewValidationError("bad slug"), want: KindValidation},
		{name: "unauthorized", err: NewUnauthorizedError("no token"), want: KindUnauthorized},
		{name: "permission", err: NewPermissionErrorf("denied %s", "announcement.create"), want: KindPermission},
		{name: "not found", err: NewNotFoundError("announcement does not exist"), want: KindNotFound},
		{name: "conflict", err: NewConflictError("slug already in use"), want: KindConflict},
		{name: "database", err: WrapDatabaseError(errors.New("conn reset"), "query failed"), want: KindDatabase},
		{name: "internal", err: WrapInternalError(errors.New("bad tag"), "failed to validate request"), want: KindInternal},
		{name: "unavailable", err: NewServiceUnavailableError("search is temporarily unavailable"), want: KindServiceUnavailable},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", NewNotFoundError("gone")), want: KindNotFound},
		{name: "plain", err: errors.New("boom"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrapDatabaseError_KeepsCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := WrapDatabaseError(cause, "database operation failed")

	require.Equal(t, "database operation failed", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestMapper_MapErrorToHTTP(t *testing.T) {
	m := NewMapper(zerolog.Nop())

	status, msg := m.MapErrorToHTTP(nil)
	require.Equal(t, fasthttp.StatusOK, status)
	require.Empty(t, msg)

	status, msg = m.MapErrorToHTTP(NewNotFoundError("announcement does not exist"))
	require.Equal(t, fasthttp.StatusNotFound, status)
	require.Equal(t, "announcement does not exist", msg)

	status, _ = m.MapErrorToHTTP(NewConflictError("slug already in use"))
	require.Equal(t, fasthttp.StatusConflict, status)

	status, _ = m.MapErrorToHTTP(NewPermissionErrorf("user %d may not %s", 7, "announcement.delete"))
	require.Equal(t, fasthttp.StatusForbidden, status)

	status, msg = m.MapErrorToHTTP(WrapDatabaseError(errors.New("timeout"), "database operation failed"))
	require.Equal(t, fasthttp.StatusInternalServerError, status)
	require.Equal(t, "database operation failed", msg)

	status, _ = m.MapErrorToHTTP(NewServiceUnavailableError("search is temporarily unavailable"))
	require.Equal(t, fasthttp.StatusServiceUnavailable, status)

	status, msg = m.MapErrorToHTTP(errors.New("secret detail"))
	require.Equal(t, fasthttp.StatusInternalServerError, status)
	require.Equal(t, "internal server error", msg)
}

package http

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/errors"
)

type fakeAuthenticator struct {
	authenticate func(ctx context.Context, token string) (*entities.User, error)
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	return f.authenticate(ctx, token)
}

func TestRequireUser(t *testing.T) {
	var gotToken string
	auth := &fakeAuthenticator{authenticate: func(_ context.Context, token string) (*entities.User, error) {
		gotToken = token
		if token != "good" {
			return nil, domainerrors.ErrInvalidToken
		}
		return &entities.User{ID: 7, Onyen: "rameses"}, nil
	}}
	mw := NewAuthMiddleware(auth, zerolog.Nop())

	var seen *entities.User
	handler := mw.RequireUser(func(ctx *fasthttp.RequestCtx) {
		seen, _ = Subject(ctx)
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set(fasthttp.HeaderAuthorization, "Bearer good")
	handler(ctx)
	require.Equal(t, "good", gotToken)
	require.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	require.NotNil(t, seen)
	require.Equal(t, "7", SubjectKey(ctx))

	bad := &fasthttp.RequestCtx{}
	bad.Request.Header.Set(fasthttp.HeaderAuthorization, "Bearer forged")
	handler(bad)
	require.Equal(t, fasthttp.StatusUnauthorized, bad.Response.StatusCode())

	missing := &fasthttp.RequestCtx{}
	auth.authenticate = func(_ context.Context, token string) (*entities.User, error) {
		require.Empty(t, token)
		return nil, domainerrors.ErrMissingToken
	}
	handler(missing)
	require.Equal(t, fasthttp.StatusUnauthorized, missing.Response.StatusCode())
	require.Empty(t, SubjectKey(missing))
}

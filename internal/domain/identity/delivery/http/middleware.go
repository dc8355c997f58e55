package http

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

const subjectKey = "subject"

var bearerPrefix = []byte("Bearer ")

// TokenAuthenticator resolves a bearer token to a user
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware attaches the authenticated caller to the request
type AuthMiddleware struct {
	auth   TokenAuthenticator
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(auth TokenAuthenticator, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		mapper: pkgerrors.NewMapper(logger),
		logger: logger.With().Str("middleware", "auth").Logger(),
	}
}

// RequireUser rejects requests without a valid bearer token with 401
func (m *AuthMiddleware) RequireUser(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		header := ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)
		token := ""
		if bytes.HasPrefix(header, bearerPrefix) {
			token = string(bytes.TrimSpace(header[len(bearerPrefix):]))
		}

		user, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			status, msg := m.mapper.MapErrorToHTTP(err)
			httputil.WriteErrorResponse(ctx, msg, status)
			return
		}

		ctx.SetUserValue(subjectKey, user)
		next(ctx)
	}
}

// Subject returns the caller attached by RequireUser
func Subject(ctx *fasthttp.RequestCtx) (*entities.User, bool) {
	user, ok := ctx.UserValue(subjectKey).(*entities.User)
	return user, ok && user != nil
}

// SubjectKey returns the caller id for per-user buckets, empty for anonymous requests
func SubjectKey(ctx *fasthttp.RequestCtx) string {
	if user, ok := Subject(ctx); ok {
		return user.SubjectID()
	}
	return ""
}

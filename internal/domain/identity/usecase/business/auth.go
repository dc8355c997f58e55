package business

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/errors"
)

// Authenticator verifies HS256 bearer tokens whose subject is a user id
type Authenticator struct {
	secret []byte
	issuer string
	users  deps.UserRepository
	now    func() time.Time
	logger zerolog.Logger
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(cfg *config.AuthConfig, users deps.UserRepository, logger zerolog.Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		users:  users,
		now:    time.Now,
		logger: logger.With().Str("component", "authenticator").Logger(),
	}
}

// Authenticate verifies token and loads the user it names
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, domainerrors.ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		a.logger.Debug().Err(err).Msg("Rejected bearer token")
		return nil, domainerrors.ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := a.users.GetByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUnknownSubject
		}
		a.logger.Error().Err(err).Uint64("user_id", userID).Msg("Failed to load token subject")
		return nil, err
	}

	return user, nil
}

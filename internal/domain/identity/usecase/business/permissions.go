package business

import (
	"context"
	"path"

	"github.com/rs/zerolog"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

// PermissionService decides capability checks from stored grants
type PermissionService struct {
	permissions deps.PermissionRepository
	logger      zerolog.Logger
}

// NewPermissionService creates a new permission service
func NewPermissionService(permissions deps.PermissionRepository, logger zerolog.Logger) *PermissionService {
	return &PermissionService{
		permissions: permissions,
		logger:      logger.With().Str("component", "permissions").Logger(),
	}
}

// Enforce fails with a PermissionError unless subject holds a grant matching action on resource
func (s *PermissionService) Enforce(ctx context.Context, subject *entities.User, action, resource string) error {
	if subject == nil {
		return pkgerrors.NewPermissionErrorf("anonymous caller may not %s", action)
	}

	grants, err := s.permissions.ListByUser(ctx, subject.ID)
	if err != nil {
		s.logger.Error().Err(err).
			Uint("user_id", subject.ID).
			Msg("Failed to load permissions")
		return err
	}

	for _, g := range grants {
		if matchPattern(g.Action, action) && matchPattern(g.Resource, resource) {
			return nil
		}
	}

	s.logger.Debug().
		Uint("user_id", subject.ID).
		Str("action", action).
		Str("resource", resource).
		Msg("Permission denied")

	return pkgerrors.NewPermissionErrorf("user %d may not %s on %s", subject.ID, action, resource)
}

func matchPattern(pattern, value string) bool {
	ok, err := path.Match(pattern, value)
	return err == nil && ok
}

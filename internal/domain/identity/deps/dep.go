package deps

import (
	"context"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
)

// UserRepository defines read access to users
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*entities.User, error)
}

// OrganizationRepository defines read access to organizations
type OrganizationRepository interface {
	// GetByID retrieves an organization by ID
	GetByID(ctx context.Context, id uint) (*entities.Organization, error)
}

// PermissionRepository defines read access to permission grants
type PermissionRepository interface {
	// ListByUser returns every grant held by the user
	ListByUser(ctx context.Context, userID uint) ([]entities.Permission, error)
}

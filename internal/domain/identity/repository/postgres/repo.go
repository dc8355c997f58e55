package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/errors"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) deps.UserRepository {
	return &userRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := database.Conn(ctx, r.db).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, pkgerrors.WrapDatabaseError(err, "failed to load user")
	}
	return &user, nil
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) deps.OrganizationRepository {
	return &organizationRepository{db: db}
}

// GetByID retrieves an organization by ID
func (r *organizationRepository) GetByID(ctx context.Context, id uint) (*entities.Organization, error) {
	var org entities.Organization
	if err := database.Conn(ctx, r.db).First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrganizationNotFound
		}
		return nil, pkgerrors.WrapDatabaseError(err, "failed to load organization")
	}
	return &org, nil
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) deps.PermissionRepository {
	return &permissionRepository{db: db}
}

// ListByUser returns every grant held by the user
func (r *permissionRepository) ListByUser(ctx context.Context, userID uint) ([]entities.Permission, error) {
	var grants []entities.Permission
	err := database.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id").
		Find(&grants).Error
	if err != nil {
		return nil, pkgerrors.WrapDatabaseError(err, "failed to load permissions")
	}
	return grants, nil
}

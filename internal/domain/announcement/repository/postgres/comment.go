package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/errors"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) deps.CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment
func (r *commentRepository) Create(ctx context.Context, c *entities.Comment) error {
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(c).Error; err != nil {
		return pkgerrors.WrapDatabaseError(err, "failed to save comment")
	}
	return nil
}

// GetByID retrieves a comment of the given announcement with its author
func (r *commentRepository) GetByID(ctx context.Context, announcementID, id uint) (*entities.Comment, error) {
	var c entities.Comment
	err := database.Conn(ctx, r.db).
		Preload("Author").
		Where("announcement_id = ? AND id = ?", announcementID, id).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}
		return nil, pkgerrors.WrapDatabaseError(err, "failed to load comment")
	}
	return &c, nil
}

// Delete removes a comment
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := database.Conn(ctx, r.db).Delete(&entities.Comment{}, id)
	if res.Error != nil {
		return pkgerrors.WrapDatabaseError(res.Error, "failed to delete comment")
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

// DeleteByAnnouncement removes every comment of an announcement
func (r *commentRepository) DeleteByAnnouncement(ctx context.Context, announcementID uint) error {
	err := database.Conn(ctx, r.db).
		Where("announcement_id = ?", announcementID).
		Delete(&entities.Comment{}).Error
	if err != nil {
		return pkgerrors.WrapDatabaseError(err, "failed to delete comments")
	}
	return nil
}

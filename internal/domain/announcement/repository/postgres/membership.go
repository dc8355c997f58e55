package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

// membershipRepository implements set semantics over a two-column join table
type membershipRepository struct {
	db    *gorm.DB
	row   func(announcementID, userID uint) interface{}
	label string
}

// NewUpvoteRepository creates the upvote relation repository
func NewUpvoteRepository(db *gorm.DB) deps.UpvoteRepository {
	return &membershipRepository{
		db:    db,
		label: "upvote",
		row: func(announcementID, userID uint) interface{} {
			return &entities.Upvote{AnnouncementID: announcementID, UserID: userID}
		},
	}
}

// NewFavoriteRepository creates the favorite relation repository
func NewFavoriteRepository(db *gorm.DB) deps.FavoriteRepository {
	return &membershipRepository{
		db:    db,
		label: "favorite",
		row: func(announcementID, userID uint) interface{} {
			return &entities.Favorite{AnnouncementID: announcementID, UserID: userID}
		},
	}
}

// Add inserts the pair and reports whether it was absent before
func (r *membershipRepository) Add(ctx context.Context, announcementID, userID uint) (bool, error) {
	res := database.Conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(r.row(announcementID, userID))
	if res.Error != nil {
		return false, pkgerrors.WrapDatabaseError(res.Error, "failed to add "+r.label)
	}
	return res.RowsAffected > 0, nil
}

// Remove deletes the pair and reports whether it was present
func (r *membershipRepository) Remove(ctx context.Context, announcementID, userID uint) (bool, error) {
	res := database.Conn(ctx, r.db).
		Where("announcement_id = ? AND user_id = ?", announcementID, userID).
		Delete(r.row(0, 0))
	if res.Error != nil {
		return false, pkgerrors.WrapDatabaseError(res.Error, "failed to remove "+r.label)
	}
	return res.RowsAffected > 0, nil
}

// Contains reports whether the pair exists
func (r *membershipRepository) Contains(ctx context.Context, announcementID, userID uint) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		Model(r.row(0, 0)).
		Where("announcement_id = ? AND user_id = ?", announcementID, userID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.WrapDatabaseError(err, "failed to check "+r.label)
	}
	return count > 0, nil
}

// RemoveAll deletes every pair for an announcement
func (r *membershipRepository) RemoveAll(ctx context.Context, announcementID uint) error {
	err := database.Conn(ctx, r.db).
		Where("announcement_id = ?", announcementID).
		Delete(r.row(0, 0)).Error
	if err != nil {
		return pkgerrors.WrapDatabaseError(err, "failed to clear "+r.label+"s")
	}
	return nil
}

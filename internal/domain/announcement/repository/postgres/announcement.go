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

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) deps.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// ListPublished returns published announcements, newest id first
func (r *announcementRepository) ListPublished(ctx context.Context) ([]entities.Announcement, error) {
	var list []entities.Announcement
	err := database.Conn(ctx, r.db).
		Preload("Organization").
		Where("status = ?", entities.StatusPublished).
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, pkgerrors.WrapDatabaseError(err, "failed to list announcements")
	}
	return list, nil
}

// ListVisibleTo returns published announcements plus the author's drafts and archives
func (r *announcementRepository) ListVisibleTo(ctx context.Context, authorID uint) ([]entities.Announcement, error) {
	var list []entities.Announcement
	err := database.Conn(ctx, r.db).
		Preload("Organization").
		Where("status = ? OR (author_id = ? AND status IN ?)",
			entities.StatusPublished, authorID, []entities.Status{entities.StatusDraft, entities.StatusArchived}).
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, pkgerrors.WrapDatabaseError(err, "failed to list announcements")
	}
	return list, nil
}

// ListPublishedByIDs returns the published announcements among ids
func (r *announcementRepository) ListPublishedByIDs(ctx context.Context, ids []uint) ([]entities.Announcement, error) {
	if len(ids) == 0 {
		return []entities.Announcement{}, nil
	}

	var list []entities.Announcement
	err := database.Conn(ctx, r.db).
		Preload("Organization").
		Where("id IN ? AND status = ?", ids, entities.StatusPublished).
		Find(&list).Error
	if err != nil {
		return nil, pkgerrors.WrapDatabaseError(err, "failed to load announcements")
	}
	return list, nil
}

// GetBySlug retrieves an announcement with its organization
func (r *announcementRepository) GetBySlug(ctx context.Context, slug string) (*entities.Announcement, error) {
	var a entities.Announcement
	err := database.Conn(ctx, r.db).
		Preload("Organization").
		Where("slug = ?", slug).
		First(&a).Error
	if err != nil {
		return nil, mapLookupError(err)
	}
	return &a, nil
}

// GetDetailsBySlug retrieves an announcement with author, organization and comments
func (r *announcementRepository) GetDetailsBySlug(ctx context.Context, slug string) (*entities.Announcement, error) {
	var a entities.Announcement
	err := database.Conn(ctx, r.db).
		Preload("Author").
		Preload("Organization").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("posted_date ASC, id ASC")
		}).
		Preload("Comments.Author").
		Where("slug = ?", slug).
		First(&a).Error
	if err != nil {
		return nil, mapLookupError(err)
	}
	return &a, nil
}

// GetByID retrieves an announcement by ID
func (r *announcementRepository) GetByID(ctx context.Context, id uint) (*entities.Announcement, error) {
	var a entities.Announcement
	if err := database.Conn(ctx, r.db).Preload("Organization").First(&a, id).Error; err != nil {
		return nil, mapLookupError(err)
	}
	return &a, nil
}

// SlugTaken reports whether an announcement other than excludeID uses slug
func (r *announcementRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		Model(&entities.Announcement{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.WrapDatabaseError(err, "failed to check slug")
	}
	return count > 0, nil
}

// Create inserts a new announcement
func (r *announcementRepository) Create(ctx context.Context, a *entities.Announcement) error {
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(a).Error; err != nil {
		return mapWriteError(err)
	}
	return nil
}

// counterColumns only move through IncrementCounter
var counterColumns = []string{string(deps.CounterViews), string(deps.CounterShares), string(deps.CounterUpvotes)}

// Save overwrites every editable column of an existing announcement; counters are left as stored
func (r *announcementRepository) Save(ctx context.Context, a *entities.Announcement) error {
	omit := append([]string{clause.Associations}, counterColumns...)
	if err := database.Conn(ctx, r.db).Omit(omit...).Save(a).Error; err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Delete removes an announcement row
func (r *announcementRepository) Delete(ctx context.Context, id uint) error {
	res := database.Conn(ctx, r.db).Delete(&entities.Announcement{}, id)
	if res.Error != nil {
		return pkgerrors.WrapDatabaseError(res.Error, "failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrAnnouncementNotFound
	}
	return nil
}

// IncrementCounter adds delta to counter in SQL and returns the refreshed row
func (r *announcementRepository) IncrementCounter(ctx context.Context, id uint, counter deps.Counter, delta int) (*entities.Announcement, error) {
	column := string(counter)
	query := database.Conn(ctx, r.db).
		Model(&entities.Announcement{}).
		Where("id = ?", id)
	if delta < 0 {
		query = query.Where(column+" >= ?", -delta)
	}

	res := query.UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return nil, pkgerrors.WrapDatabaseError(res.Error, "failed to update counter")
	}

	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrAnnouncementNotFound
	}
	return pkgerrors.WrapDatabaseError(err, "failed to load announcement")
}

func mapWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrSlugTaken
	}
	return pkgerrors.WrapDatabaseError(err, "failed to save announcement")
}

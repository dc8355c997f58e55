package business

import (
	"context"
	"strings"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/errors"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/mapfn"
)

// ListPublished returns every published announcement, newest id first
func (u *UseCase) ListPublished(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	list, err := u.announcements.ListPublished(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to list published announcements")
		return nil, err
	}
	return toResponses(list), nil
}

// ListForAdmin returns published announcements plus the caller's own drafts and archives
func (u *UseCase) ListForAdmin(ctx context.Context, subject *identity.User) ([]dto.AnnouncementResponse, error) {
	if err := u.permissions.Enforce(ctx, subject, actionCreate, resourceAnnouncement); err != nil {
		return nil, err
	}

	list, err := u.announcements.ListVisibleTo(ctx, subject.ID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", subject.ID).
			Msg("Failed to list admin announcements")
		return nil, err
	}
	return toResponses(list), nil
}

// GetBySlug returns the details of a published announcement.
// Drafts and archives are reported as missing to every caller.
func (u *UseCase) GetBySlug(ctx context.Context, slug string) (*dto.AnnouncementDetailsResponse, error) {
	a, err := u.announcements.GetDetailsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a.Status != entities.StatusPublished {
		return nil, domainerrors.ErrAnnouncementNotFound
	}
	return toDetails(a), nil
}

// GetBySlugForAdmin additionally lets the author see their drafts and archives
func (u *UseCase) GetBySlugForAdmin(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementDetailsResponse, error) {
	a, err := u.announcements.GetDetailsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a.Status != entities.StatusPublished && !a.IsAuthoredBy(subjectID(subject)) {
		u.logger.Debug().
			Str("slug", slug).
			Uint("user_id", subjectID(subject)).
			Msg("Hidden announcement requested by non-author")
		return nil, domainerrors.ErrAnnouncementNotFound
	}
	return toDetails(a), nil
}

// Search runs a full-text query over published announcements ordered by relevance
func (u *UseCase) Search(ctx context.Context, query string, limit int) ([]dto.AnnouncementResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrEmptyQuery
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	u.metrics.RecordSearch()

	ids, err := u.search.Search(query, limit)
	if err != nil {
		u.logger.Error().Err(err).Str("query", query).Msg("Search index query failed")
		return nil, domainerrors.ErrSearchUnavailable
	}

	list, err := u.announcements.ListPublishedByIDs(ctx, ids)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to load search hits")
		return nil, err
	}

	byID := mapfn.IndexBy(list, func(a entities.Announcement) uint { return a.ID })
	return toResponses(mapfn.PickOrdered(ids, byID)), nil
}

// RebuildSearchIndex replaces the index content with the published announcements
func (u *UseCase) RebuildSearchIndex(ctx context.Context) error {
	list, err := u.announcements.ListPublished(ctx)
	if err != nil {
		return err
	}

	if err := u.search.Rebuild(mapfn.ConvertSlice(list, toSearchDocument)); err != nil {
		u.logger.Error().Err(err).Msg("Failed to rebuild search index")
		return err
	}

	u.logger.Info().Int("documents", len(list)).Msg("Search index rebuilt")
	return nil
}

// syncSearch keeps the index in line with a committed announcement
func (u *UseCase) syncSearch(a *entities.Announcement) {
	var err error
	if a.Status == entities.StatusPublished {
		doc := toSearchDocument(*a)
		err = u.search.Upsert(&doc)
	} else {
		err = u.search.Remove(a.ID)
	}
	if err != nil {
		u.logger.Warn().Err(err).
			Uint("announcement_id", a.ID).
			Msg("Failed to update search index")
	}
}

package business

import (
	"context"
	"time"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/errors"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
)

// Create stores a new announcement on behalf of subject
func (u *UseCase) Create(ctx context.Context, subject *identity.User, req *dto.AnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if err := u.permissions.Enforce(ctx, subject, actionCreate, resourceAnnouncement); err != nil {
		return nil, err
	}
	if err := u.input.Announcement(req); err != nil {
		return nil, err
	}

	var created *entities.Announcement
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		author, org, err := u.resolveOwners(ctx, req)
		if err != nil {
			return err
		}

		taken, err := u.announcements.SlugTaken(ctx, req.Slug, 0)
		if err != nil {
			return err
		}
		if taken {
			return domainerrors.ErrSlugTaken
		}

		a := &entities.Announcement{
			Headline:       req.Headline,
			Syn:            req.Syn,
			Body:           req.Body,
			Slug:           req.Slug,
			ImageURL:       defaultImage(req.ImageURL, author, org),
			Status:         entities.Status(req.Status),
			AuthorID:       author.ID,
			OrganizationID: req.OrganizationID,
			PublishedDate:  req.PublishedDate,
			ModifiedDate:   req.ModifiedDate,
			ArchivedDate:   req.ArchivedDate,
		}
		if a.Status == entities.StatusPublished {
			a.PublishedDate = timePtr(u.now())
		}

		if err := u.announcements.Create(ctx, a); err != nil {
			return err
		}
		a.Organization = org
		created = a
		return nil
	})
	if err != nil {
		u.logger.Error().Err(err).
			Str("slug", req.Slug).
			Uint("user_id", subjectID(subject)).
			Msg("Failed to create announcement")
		return nil, err
	}

	u.logger.Info().
		Uint("announcement_id", created.ID).
		Str("slug", created.Slug).
		Str("status", string(created.Status)).
		Msg("Announcement created")

	u.syncSearch(created)
	u.publish(ctx, toEvent(dto.EventAnnouncementCreated, created, subject.ID))
	if created.Status == entities.StatusPublished {
		u.publish(ctx, toEvent(dto.EventAnnouncementPublished, created, subject.ID))
	}

	resp := toResponse(*created)
	return &resp, nil
}

// Update overwrites an existing announcement located by the request id
func (u *UseCase) Update(ctx context.Context, subject *identity.User, req *dto.AnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if err := u.permissions.Enforce(ctx, subject, actionUpdate, resourceAnnouncement); err != nil {
		return nil, err
	}
	if req.ID == nil || *req.ID == 0 {
		return nil, domainerrors.ErrMissingID
	}
	if err := u.input.Announcement(req); err != nil {
		return nil, err
	}

	var (
		updated *entities.Announcement
		prior   entities.Status
	)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		author, _, err := u.resolveOwners(ctx, req)
		if err != nil {
			return err
		}

		a, err := u.announcements.GetByID(ctx, *req.ID)
		if err != nil {
			return err
		}
		if a.Status != entities.StatusPublished && !a.IsAuthoredBy(subject.ID) {
			return domainerrors.ErrAnnouncementNotFound
		}

		if req.Slug != a.Slug {
			taken, err := u.announcements.SlugTaken(ctx, req.Slug, a.ID)
			if err != nil {
				return err
			}
			if taken {
				return domainerrors.ErrSlugTaken
			}
		}

		prior = a.Status
		applyRequest(a, req, author)
		stampTransition(a, prior, u.now())

		if err := u.announcements.Save(ctx, a); err != nil {
			return err
		}

		// counters may have moved since the read
		updated, err = u.announcements.GetByID(ctx, a.ID)
		return err
	})
	if err != nil {
		u.logger.Error().Err(err).
			Uint("announcement_id", *req.ID).
			Uint("user_id", subjectID(subject)).
			Msg("Failed to update announcement")
		return nil, err
	}

	u.logger.Info().
		Uint("announcement_id", updated.ID).
		Str("slug", updated.Slug).
		Str("from", string(prior)).
		Str("to", string(updated.Status)).
		Msg("Announcement updated")

	u.syncSearch(updated)
	u.publish(ctx, toEvent(transitionEvent(prior, updated.Status), updated, subject.ID))

	resp := toResponse(*updated)
	return &resp, nil
}

// Delete removes an announcement together with its comments and memberships
func (u *UseCase) Delete(ctx context.Context, subject *identity.User, slug string) error {
	if err := u.permissions.Enforce(ctx, subject, actionDelete, resourceAnnouncement); err != nil {
		return err
	}

	var deleted *entities.Announcement
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := u.announcements.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}

		if err := u.comments.DeleteByAnnouncement(ctx, a.ID); err != nil {
			return err
		}
		if err := u.upvotes.RemoveAll(ctx, a.ID); err != nil {
			return err
		}
		if err := u.favorites.RemoveAll(ctx, a.ID); err != nil {
			return err
		}
		if err := u.announcements.Delete(ctx, a.ID); err != nil {
			return err
		}
		deleted = a
		return nil
	})
	if err != nil {
		u.logger.Error().Err(err).
			Str("slug", slug).
			Uint("user_id", subjectID(subject)).
			Msg("Failed to delete announcement")
		return err
	}

	u.logger.Info().
		Uint("announcement_id", deleted.ID).
		Str("slug", slug).
		Msg("Announcement deleted")

	if err := u.search.Remove(deleted.ID); err != nil {
		u.logger.Warn().Err(err).Uint("announcement_id", deleted.ID).Msg("Failed to remove search document")
	}
	u.publish(ctx, toEvent(dto.EventAnnouncementDeleted, deleted, subject.ID))

	return nil
}

// resolveOwners loads the declared author and, when given, the organization
func (u *UseCase) resolveOwners(ctx context.Context, req *dto.AnnouncementRequest) (*identity.User, *identity.Organization, error) {
	author, err := u.users.GetByID(ctx, req.AuthorID)
	if err != nil {
		return nil, nil, err
	}
	if req.OrganizationID == nil {
		return author, nil, nil
	}
	org, err := u.organizations.GetByID(ctx, *req.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return author, org, nil
}

// defaultImage falls back to the organization logo, then the author's avatar
func defaultImage(requested *string, author *identity.User, org *identity.Organization) *string {
	image := ""
	switch {
	case requested != nil && *requested != "":
		image = *requested
	case org != nil && org.Logo != "":
		image = org.Logo
	case author.GitHubAvatar != nil:
		image = *author.GitHubAvatar
	}
	return &image
}

func applyRequest(a *entities.Announcement, req *dto.AnnouncementRequest, author *identity.User) {
	a.Headline = req.Headline
	a.Syn = req.Syn
	a.Body = req.Body
	a.Slug = req.Slug
	a.Status = entities.Status(req.Status)
	a.AuthorID = author.ID

	if req.OrganizationID != nil {
		a.OrganizationID = req.OrganizationID
	}
	if req.ImageURL != nil {
		a.ImageURL = req.ImageURL
	}
	if req.PublishedDate != nil {
		a.PublishedDate = req.PublishedDate
	}
	if req.ModifiedDate != nil {
		a.ModifiedDate = req.ModifiedDate
	}
	if req.ArchivedDate != nil {
		a.ArchivedDate = req.ArchivedDate
	}
}

// stampTransition records when a lifecycle state was entered; re-entering the same state counts as a modification
func stampTransition(a *entities.Announcement, prior entities.Status, now time.Time) {
	switch a.Status {
	case entities.StatusPublished:
		if prior != entities.StatusPublished {
			a.PublishedDate = timePtr(now)
		} else {
			a.ModifiedDate = timePtr(now)
		}
	case entities.StatusArchived:
		if prior != entities.StatusArchived {
			a.ArchivedDate = timePtr(now)
		} else {
			a.ModifiedDate = timePtr(now)
		}
	}
}

func transitionEvent(prior, next entities.Status) string {
	if prior == next {
		return dto.EventAnnouncementUpdated
	}
	switch next {
	case entities.StatusPublished:
		return dto.EventAnnouncementPublished
	case entities.StatusArchived:
		return dto.EventAnnouncementArchived
	}
	return dto.EventAnnouncementUpdated
}

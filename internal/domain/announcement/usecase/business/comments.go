package business

import (
	"context"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
)

// CreateComment attaches a comment to the announcement identified by slug.
// A zero author id means the caller; posting for someone else requires update rights.
func (u *UseCase) CreateComment(ctx context.Context, subject *identity.User, slug string, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	if err := u.input.Comment(req); err != nil {
		return nil, err
	}

	caller, err := u.requireCaller(ctx, subject)
	if err != nil {
		return nil, err
	}
	if req.AuthorID != 0 && req.AuthorID != caller.ID {
		if err := u.permissions.Enforce(ctx, caller, actionUpdate, resourceAnnouncement); err != nil {
			return nil, err
		}
	}

	var (
		created      *entities.Comment
		announcement *entities.Announcement
	)
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := u.announcements.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}

		author := caller
		if req.AuthorID != 0 && req.AuthorID != caller.ID {
			if author, err = u.users.GetByID(ctx, req.AuthorID); err != nil {
				return err
			}
		}

		c := &entities.Comment{
			Text:           req.Text,
			AuthorID:       author.ID,
			AnnouncementID: a.ID,
			PostedDate:     u.now(),
		}
		if err := u.comments.Create(ctx, c); err != nil {
			return err
		}
		c.Author = author
		created, announcement = c, a
		return nil
	})
	if err != nil {
		u.logger.Error().Err(err).
			Str("slug", slug).
			Uint("user_id", subjectID(subject)).
			Msg("Failed to create comment")
		return nil, err
	}

	u.logger.Info().
		Uint("comment_id", created.ID).
		Uint("announcement_id", created.AnnouncementID).
		Msg("Comment created")

	event := toEvent(dto.EventCommentCreated, announcement, caller.ID)
	event.CommentID = &created.ID
	u.publish(ctx, event)

	resp := toCommentResponse(*created)
	return &resp, nil
}

// DeleteComment removes a comment; only its author or a holder of delete rights may do so
func (u *UseCase) DeleteComment(ctx context.Context, subject *identity.User, slug string, commentID uint) error {
	caller, err := u.requireCaller(ctx, subject)
	if err != nil {
		return err
	}

	a, err := u.announcements.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	c, err := u.comments.GetByID(ctx, a.ID, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != caller.ID {
		if err := u.permissions.Enforce(ctx, caller, actionDelete, resourceAnnouncement); err != nil {
			return err
		}
	}

	if err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return u.comments.Delete(ctx, c.ID)
	}); err != nil {
		u.logger.Error().Err(err).
			Uint("comment_id", commentID).
			Str("slug", slug).
			Msg("Failed to delete comment")
		return err
	}

	u.logger.Info().
		Uint("comment_id", commentID).
		Uint("announcement_id", a.ID).
		Msg("Comment deleted")

	event := toEvent(dto.EventCommentDeleted, a, caller.ID)
	event.CommentID = &commentID
	u.publish(ctx, event)

	return nil
}

package business

import (
	"context"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
)

// UpdateViews counts one more view of the announcement
func (u *UseCase) UpdateViews(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementResponse, error) {
	return u.bumpCounter(ctx, subject, slug, deps.CounterViews, "view")
}

// UpdateShares counts one more share of the announcement
func (u *UseCase) UpdateShares(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementResponse, error) {
	return u.bumpCounter(ctx, subject, slug, deps.CounterShares, "share")
}

func (u *UseCase) bumpCounter(ctx context.Context, subject *identity.User, slug string, counter deps.Counter, kind string) (*dto.AnnouncementResponse, error) {
	var updated *entities.Announcement
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := u.announcements.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		updated, err = u.announcements.IncrementCounter(ctx, a.ID, counter, 1)
		return err
	})
	if err != nil {
		u.logger.Error().Err(err).
			Str("slug", slug).
			Str("counter", string(counter)).
			Uint("user_id", subjectID(subject)).
			Msg("Failed to update engagement counter")
		return nil, err
	}

	u.metrics.RecordEngagement(kind)
	resp := toResponse(*updated)
	return &resp, nil
}

// AddUpvote records the caller's upvote; repeating it changes nothing
func (u *UseCase) AddUpvote(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error) {
	err := u.toggle(ctx, subject, slug, "upvote", func(ctx context.Context, a *entities.Announcement, userID uint) error {
		added, err := u.upvotes.Add(ctx, a.ID, userID)
		if err != nil || !added {
			return err
		}
		_, err = u.announcements.IncrementCounter(ctx, a.ID, deps.CounterUpvotes, 1)
		return err
	})
	if err != nil {
		return nil, err
	}
	u.metrics.RecordEngagement("upvote")
	return &dto.UpvoteResponse{Upvoted: true}, nil
}

// RemoveUpvote withdraws the caller's upvote if present
func (u *UseCase) RemoveUpvote(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error) {
	err := u.toggle(ctx, subject, slug, "upvote", func(ctx context.Context, a *entities.Announcement, userID uint) error {
		removed, err := u.upvotes.Remove(ctx, a.ID, userID)
		if err != nil || !removed {
			return err
		}
		_, err = u.announcements.IncrementCounter(ctx, a.ID, deps.CounterUpvotes, -1)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpvoteResponse{Upvoted: false}, nil
}

// CheckUpvote reports whether the caller upvoted the announcement
func (u *UseCase) CheckUpvote(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error) {
	return u.check(ctx, subject, slug, u.upvotes)
}

// AddFavorite bookmarks the announcement for the caller
func (u *UseCase) AddFavorite(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error) {
	err := u.toggle(ctx, subject, slug, "favorite", func(ctx context.Context, a *entities.Announcement, userID uint) error {
		_, err := u.favorites.Add(ctx, a.ID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	u.metrics.RecordEngagement("favorite")
	return &dto.UpvoteResponse{Upvoted: true}, nil
}

// RemoveFavorite drops the caller's bookmark if present
func (u *UseCase) RemoveFavorite(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error) {
	err := u.toggle(ctx, subject, slug, "favorite", func(ctx context.Context, a *entities.Announcement, userID uint) error {
		_, err := u.favorites.Remove(ctx, a.ID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpvoteResponse{Upvoted: false}, nil
}

// CheckFavorite reports whether the caller bookmarked the announcement
func (u *UseCase) CheckFavorite(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error) {
	return u.check(ctx, subject, slug, u.favorites)
}

// toggle resolves announcement and caller, then applies change in the same transaction
func (u *UseCase) toggle(
	ctx context.Context,
	subject *identity.User,
	slug, relation string,
	change func(ctx context.Context, a *entities.Announcement, userID uint) error,
) error {
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := u.announcements.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		caller, err := u.requireCaller(ctx, subject)
		if err != nil {
			return err
		}
		return change(ctx, a, caller.ID)
	})
	if err != nil {
		u.logger.Error().Err(err).
			Str("slug", slug).
			Str("relation", relation).
			Uint("user_id", subjectID(subject)).
			Msg("Failed to change membership")
	}
	return err
}

func (u *UseCase) check(ctx context.Context, subject *identity.User, slug string, relation deps.MembershipRepository) (*dto.UpvoteResponse, error) {
	a, err := u.announcements.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	caller, err := u.requireCaller(ctx, subject)
	if err != nil {
		return nil, err
	}

	ok, err := relation.Contains(ctx, a.ID, caller.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UpvoteResponse{Upvoted: ok}, nil
}

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/errors"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database/dbtest"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	models := append([]interface{}{&identity.User{}, &identity.Organization{}}, entities.Models()...)
	return dbtest.Open(t, models...)
}

func seed(t *testing.T, db *gorm.DB) (*identity.User, *identity.User) {
	t.Helper()
	alice := &identity.User{PID: 1, Onyen: "alice"}
	bob := &identity.User{PID: 2, Onyen: "bob"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)
	return alice, bob
}

func TestAnnouncementRepository_Listing(t *testing.T) {
	db := openDB(t)
	alice, bob := seed(t, db)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	rows := []entities.Announcement{
		{Headline: "one", Slug: "one", Status: entities.StatusPublished, AuthorID: alice.ID},
		{Headline: "two", Slug: "two", Status: entities.StatusDraft, AuthorID: alice.ID},
		{Headline: "three", Slug: "three", Status: entities.StatusArchived, AuthorID: bob.ID},
		{Headline: "four", Slug: "four", Status: entities.StatusPublished, AuthorID: bob.ID},
	}
	for i := range rows {
		require.NoError(t, repo.Create(ctx, &rows[i]))
	}

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"four", "one"}, slugs(published))

	visible, err := repo.ListVisibleTo(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"four", "two", "one"}, slugs(visible))

	byIDs, err := repo.ListPublishedByIDs(ctx, []uint{rows[0].ID, rows[1].ID})
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, slugs(byIDs))
}

func TestAnnouncementRepository_SlugUniqueness(t *testing.T) {
	db := openDB(t)
	alice, _ := seed(t, db)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	first := &entities.Announcement{Headline: "x", Slug: "x", Status: entities.StatusDraft, AuthorID: alice.ID}
	require.NoError(t, repo.Create(ctx, first))

	dup := &entities.Announcement{Headline: "y", Slug: "x", Status: entities.StatusDraft, AuthorID: alice.ID}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrSlugTaken)

	taken, err := repo.SlugTaken(ctx, "x", 0)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.SlugTaken(ctx, "x", first.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestAnnouncementRepository_CountersAndDetails(t *testing.T) {
	db := openDB(t)
	alice, bob := seed(t, db)
	repo := NewAnnouncementRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	a := &entities.Announcement{Headline: "x", Slug: "x", Status: entities.StatusPublished, AuthorID: alice.ID}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.IncrementCounter(ctx, a.ID, deps.CounterViews, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ViewCount)

	got, err = repo.IncrementCounter(ctx, a.ID, deps.CounterUpvotes, -1)
	require.NoError(t, err)
	require.Zero(t, got.UpvoteCount)

	_, err = repo.IncrementCounter(ctx, a.ID+99, deps.CounterShares, 1)
	require.ErrorIs(t, err, domainerrors.ErrAnnouncementNotFound)

	now := time.Now().UTC()
	require.NoError(t, comments.Create(ctx, &entities.Comment{Text: "later", AuthorID: bob.ID, AnnouncementID: a.ID, PostedDate: now.Add(time.Minute)}))
	require.NoError(t, comments.Create(ctx, &entities.Comment{Text: "first", AuthorID: alice.ID, AnnouncementID: a.ID, PostedDate: now}))

	details, err := repo.GetDetailsBySlug(ctx, "x")
	require.NoError(t, err)
	require.NotNil(t, details.Author)
	require.Equal(t, "alice", details.Author.Onyen)
	require.Len(t, details.Comments, 2)
	require.Equal(t, "first", details.Comments[0].Text)
	require.Equal(t, "bob", details.Comments[1].Author.Onyen)

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrAnnouncementNotFound)
}

func TestMembershipRepository(t *testing.T) {
	db := openDB(t)
	alice, bob := seed(t, db)
	upvotes := NewUpvoteRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	added, err := upvotes.Add(ctx, 1, alice.ID)
	require.NoError(t, err)
	require.True(t, added)

	added, err = upvotes.Add(ctx, 1, alice.ID)
	require.NoError(t, err)
	require.False(t, added)

	has, err := upvotes.Contains(ctx, 1, alice.ID)
	require.NoError(t, err)
	require.True(t, has)

	has, err = favorites.Contains(ctx, 1, alice.ID)
	require.NoError(t, err)
	require.False(t, has)

	removed, err := upvotes.Remove(ctx, 1, bob.ID)
	require.NoError(t, err)
	require.False(t, removed)

	_, err = upvotes.Add(ctx, 1, bob.ID)
	require.NoError(t, err)
	require.NoError(t, upvotes.RemoveAll(ctx, 1))

	has, err = upvotes.Contains(ctx, 1, bob.ID)
	require.NoError(t, err)
	require.False(t, has)
}

func slugs(list []entities.Announcement) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Slug
	}
	return out
}

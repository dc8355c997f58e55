package deps

import (
	"context"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
)

// Counter names an engagement column that can be bumped atomically
type Counter string

const (
	CounterViews   Counter = "view_count"
	CounterShares  Counter = "share_count"
	CounterUpvotes Counter = "upvote_count"
)

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	// ListPublished returns published announcements, newest id first
	ListPublished(ctx context.Context) ([]entities.Announcement, error)

	// ListVisibleTo returns published announcements plus the author's drafts and archives, newest id first
	ListVisibleTo(ctx context.Context, authorID uint) ([]entities.Announcement, error)

	// ListPublishedByIDs returns the published announcements among ids in no particular order
	ListPublishedByIDs(ctx context.Context, ids []uint) ([]entities.Announcement, error)

	// GetBySlug retrieves an announcement with its organization
	GetBySlug(ctx context.Context, slug string) (*entities.Announcement, error)

	// GetDetailsBySlug retrieves an announcement with author, organization and comments
	GetDetailsBySlug(ctx context.Context, slug string) (*entities.Announcement, error)

	// GetByID retrieves an announcement by ID
	GetByID(ctx context.Context, id uint) (*entities.Announcement, error)

	// SlugTaken reports whether an announcement other than excludeID uses slug
	SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error)

	// Create inserts a new announcement
	Create(ctx context.Context, announcement *entities.Announcement) error

	// Save overwrites every editable column of an existing announcement, leaving counters untouched
	Save(ctx context.Context, announcement *entities.Announcement) error

	// Delete removes an announcement row
	Delete(ctx context.Context, id uint) error

	// IncrementCounter adds delta to counter in SQL and returns the refreshed row
	IncrementCounter(ctx context.Context, id uint, counter Counter, delta int) (*entities.Announcement, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create inserts a comment
	Create(ctx context.Context, comment *entities.Comment) error

	// GetByID retrieves a comment of the given announcement with its author
	GetByID(ctx context.Context, announcementID, id uint) (*entities.Comment, error)

	// Delete removes a comment
	Delete(ctx context.Context, id uint) error

	// DeleteByAnnouncement removes every comment of an announcement
	DeleteByAnnouncement(ctx context.Context, announcementID uint) error
}

// MembershipRepository is a (announcement, user) relation with set semantics
type MembershipRepository interface {
	// Add inserts the pair and reports whether it was absent before
	Add(ctx context.Context, announcementID, userID uint) (bool, error)

	// Remove deletes the pair and reports whether it was present
	Remove(ctx context.Context, announcementID, userID uint) (bool, error)

	// Contains reports whether the pair exists
	Contains(ctx context.Context, announcementID, userID uint) (bool, error)

	// RemoveAll deletes every pair for an announcement
	RemoveAll(ctx context.Context, announcementID uint) error
}

// UpvoteRepository stores which users upvoted which announcements
type UpvoteRepository interface {
	MembershipRepository
}

// FavoriteRepository stores which users favorited which announcements
type FavoriteRepository interface {
	MembershipRepository
}

// UserProvider resolves users referenced by announcements and comments
type UserProvider interface {
	GetByID(ctx context.Context, id uint) (*identity.User, error)
}

// OrganizationProvider resolves organizations referenced by announcements
type OrganizationProvider interface {
	GetByID(ctx context.Context, id uint) (*identity.Organization, error)
}

// PermissionEnforcer is the capability check; it fails with a PermissionError
type PermissionEnforcer interface {
	Enforce(ctx context.Context, subject *identity.User, action, resource string) error
}

// Transactor runs fn inside one database transaction
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher defines interface for sending announcement events
type EventPublisher interface {
	// PublishAnnouncementEvent sends one event; callers treat failures as non-fatal
	PublishAnnouncementEvent(ctx context.Context, event *dto.AnnouncementEvent) error
}

// SearchIndex defines the full-text index over published announcements
type SearchIndex interface {
	// Upsert adds or replaces a document
	Upsert(doc *dto.SearchDocument) error

	// Remove drops a document if present
	Remove(id uint) error

	// Rebuild replaces the index content with docs
	Rebuild(docs []dto.SearchDocument) error

	// Search returns matching announcement ids ordered by relevance
	Search(query string, limit int) ([]uint, error)
}

// Metrics records operation outcomes
type Metrics interface {
	RecordEngagement(kind string)
	RecordSearch()
}

// AnnouncementService defines the operations exposed over HTTP
type AnnouncementService interface {
	ListPublished(ctx context.Context) ([]dto.AnnouncementResponse, error)
	ListForAdmin(ctx context.Context, subject *identity.User) ([]dto.AnnouncementResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.AnnouncementDetailsResponse, error)
	GetBySlugForAdmin(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementDetailsResponse, error)
	Search(ctx context.Context, query string, limit int) ([]dto.AnnouncementResponse, error)

	Create(ctx context.Context, subject *identity.User, req *dto.AnnouncementRequest) (*dto.AnnouncementResponse, error)
	Update(ctx context.Context, subject *identity.User, req *dto.AnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, subject *identity.User, slug string) error

	UpdateViews(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementResponse, error)
	UpdateShares(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementResponse, error)

	AddUpvote(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)
	RemoveUpvote(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)
	CheckUpvote(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)
	AddFavorite(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)
	RemoveFavorite(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)
	CheckFavorite(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)

	CreateComment(ctx context.Context, subject *identity.User, slug string, req *dto.CommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, subject *identity.User, slug string, commentID uint) error
}

// OperationMetrics counts handled API operations and their failures
type OperationMetrics interface {
	RecordOperation(operation string)
	RecordOperationError(operation, errorType string)
}

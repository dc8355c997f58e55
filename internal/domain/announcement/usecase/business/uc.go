package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	identityerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/errors"
)

const (
	resourceAnnouncement = "announcement"

	actionCreate = "announcement.create"
	actionUpdate = "announcement.update"
	actionDelete = "announcement.delete"

	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// Params holds use case dependencies for fx injection
type Params struct {
	fx.In

	Announcements deps.AnnouncementRepository
	Comments      deps.CommentRepository
	Upvotes       deps.UpvoteRepository
	Favorites     deps.FavoriteRepository
	Users         deps.UserProvider
	Organizations deps.OrganizationProvider
	Permissions   deps.PermissionEnforcer
	Tx            deps.Transactor
	Publisher     deps.EventPublisher
	Search        deps.SearchIndex
	Metrics       deps.Metrics
	Logger        zerolog.Logger
}

// UseCase implements announcement business logic
type UseCase struct {
	announcements deps.AnnouncementRepository
	comments      deps.CommentRepository
	upvotes       deps.UpvoteRepository
	favorites     deps.FavoriteRepository
	users         deps.UserProvider
	organizations deps.OrganizationProvider
	permissions   deps.PermissionEnforcer
	tx            deps.Transactor
	publisher     deps.EventPublisher
	search        deps.SearchIndex
	metrics       deps.Metrics
	input         *InputPolicy
	now           func() time.Time
	logger        zerolog.Logger
}

// NewUseCase creates a new announcement use case
func NewUseCase(p Params) *UseCase {
	return &UseCase{
		announcements: p.Announcements,
		comments:      p.Comments,
		upvotes:       p.Upvotes,
		favorites:     p.Favorites,
		users:         p.Users,
		organizations: p.Organizations,
		permissions:   p.Permissions,
		tx:            p.Tx,
		publisher:     p.Publisher,
		search:        p.Search,
		metrics:       p.Metrics,
		input:         NewInputPolicy(),
		now:           func() time.Time { return time.Now().UTC() },
		logger:        p.Logger.With().Str("component", "announcement_usecase").Logger(),
	}
}

// requireCaller resolves the caller against the users table
func (u *UseCase) requireCaller(ctx context.Context, subject *identity.User) (*identity.User, error) {
	if subject == nil {
		return nil, identityerrors.ErrUserNotFound
	}
	return u.users.GetByID(ctx, subject.ID)
}

// publish sends an event after commit; failures never fail the request
func (u *UseCase) publish(ctx context.Context, event *dto.AnnouncementEvent) {
	event.OccurredAt = u.now()
	if err := u.publisher.PublishAnnouncementEvent(ctx, event); err != nil {
		u.logger.Warn().Err(err).
			Str("event_type", event.Type).
			Uint("announcement_id", event.AnnouncementID).
			Msg("Failed to publish announcement event")
	}
}

func subjectID(subject *identity.User) uint {
	if subject == nil {
		return 0
	}
	return subject.ID
}

func timePtr(t time.Time) *time.Time {
	return &t
}

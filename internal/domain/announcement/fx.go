package announcement

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	announcementhttp "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/delivery/http"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/repository/postgres"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/usecase/business"
	identitydeps "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/deps"
	identitybusiness "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/usecase/business"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/http/server"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

// limiterTTL is how long an idle caller's token bucket is kept
const limiterTTL = 10 * time.Minute

// Module provides announcement components for fx DI
var Module = fx.Module("announcement",
	fx.Provide(
		postgres.NewAnnouncementRepository,
		postgres.NewCommentRepository,
		postgres.NewUpvoteRepository,
		postgres.NewFavoriteRepository,
	),
	fx.Provide(
		func(r identitydeps.UserRepository) deps.UserProvider { return r },
		func(r identitydeps.OrganizationRepository) deps.OrganizationProvider { return r },
		func(s *identitybusiness.PermissionService) deps.PermissionEnforcer { return s },
		func(t *database.Transactor) deps.Transactor { return t },
		func(m *metrics.Metrics) deps.Metrics { return m },
		func(m *metrics.Metrics) deps.OperationMetrics { return m },
	),
	fx.Provide(business.NewUseCase),
	fx.Provide(func(uc *business.UseCase) deps.AnnouncementService { return uc }),
	fx.Provide(NewLimiterFx),
	fx.Provide(announcementhttp.NewAnnouncementHandler),
	fx.Provide(announcementhttp.NewRouter),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterSearchRebuild),
)

// NewLimiterFx creates the per-caller limiter for engagement counters
func NewLimiterFx(cfg *config.RateLimitConfig) *httputil.KeyedLimiter {
	return httputil.NewKeyedLimiter(cfg.RPS, cfg.Burst, limiterTTL)
}

// RegisterRoutes registers announcement routes on the server
func RegisterRoutes(server *server.Server, router *announcementhttp.Router) {
	router.RegisterRoutes(server.Router)
}

// RegisterSearchRebuild fills the search index from the database on start
func RegisterSearchRebuild(lc fx.Lifecycle, uc *business.UseCase, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := uc.RebuildSearchIndex(ctx); err != nil {
				logger.Warn().Err(err).Msg("Search index rebuild failed, search results may be incomplete")
			}
			return nil
		},
	})
}

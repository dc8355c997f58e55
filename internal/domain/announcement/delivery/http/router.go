package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"

	identityhttp "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/delivery/http"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

const basePath = "/api/announcements"

// Router registers announcement HTTP routes
type Router struct {
	handler *AnnouncementHandler
	auth    *identityhttp.AuthMiddleware
	limiter *httputil.KeyedLimiter
	logger  zerolog.Logger
}

// NewRouter creates a new announcement router
func NewRouter(handler *AnnouncementHandler, auth *identityhttp.AuthMiddleware, limiter *httputil.KeyedLimiter, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		auth:    auth,
		limiter: limiter,
		logger:  logger,
	}
}

// RegisterRoutes registers announcement routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	h := r.handler

	// Collection routes live on the bare prefix, outside the group
	rt.GET(basePath, h.ListPublished)
	rt.POST(basePath, httputil.Chain(h.Create, r.auth.RequireUser))
	rt.PUT(basePath, httputil.Chain(h.Update, r.auth.RequireUser))

	group := rt.Group(basePath)

	public := httputil.NewMiddlewareGroup(group)
	public.GET("/search", h.Search)
	public.GET("/{slug}", h.GetBySlug)

	private := httputil.NewMiddlewareGroup(group, r.auth.RequireUser)
	private.GET("/admin", h.ListForAdmin)
	private.GET("/admin/{slug}", h.GetBySlugForAdmin)
	private.DELETE("/{slug}", h.Delete)

	// Engagement counters are bounded per caller
	limited := private.With(r.limiter.Middleware(identityhttp.SubjectKey))
	limited.PUT("/{slug}/viewCount", h.UpdateViews)
	limited.PUT("/{slug}/shareCount", h.UpdateShares)

	private.PUT("/{slug}/addUpvote", h.AddUpvote)
	private.PUT("/{slug}/removeUpvote", h.RemoveUpvote)
	private.GET("/{slug}/checkUpvote", h.CheckUpvote)
	private.PUT("/{slug}/addFavorite", h.AddFavorite)
	private.PUT("/{slug}/removeFavorite", h.RemoveFavorite)
	private.GET("/{slug}/checkFavorite", h.CheckFavorite)

	private.POST("/{slug}/comments", h.CreateComment)
	private.DELETE("/comments/{slug}/{id}", h.DeleteComment)

	r.logger.Info().Msg("Announcement routes registered")
}

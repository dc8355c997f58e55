package http

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	identityhttp "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/delivery/http"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

// AnnouncementHandler handles announcement HTTP requests
type AnnouncementHandler struct {
	service deps.AnnouncementService
	metrics deps.OperationMetrics
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(service deps.AnnouncementService, m deps.OperationMetrics, logger zerolog.Logger) *AnnouncementHandler {
	l := logger.With().Str("handler", "announcement").Logger()
	return &AnnouncementHandler{
		service: service,
		metrics: m,
		mapper:  pkgerrors.NewMapper(l),
		logger:  l,
	}
}

// ListPublished handles GET /api/announcements
func (h *AnnouncementHandler) ListPublished(ctx *fasthttp.RequestCtx) {
	list, err := h.service.ListPublished(ctx)
	h.respond(ctx, "list_published", list, err, fasthttp.StatusOK)
}

// Search handles GET /api/announcements/search?q=&limit=
func (h *AnnouncementHandler) Search(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	limit, err := args.GetUint("limit")
	if err != nil {
		limit = 0
	}

	list, err := h.service.Search(ctx, string(args.Peek("q")), limit)
	h.respond(ctx, "search", list, err, fasthttp.StatusOK)
}

// ListForAdmin handles GET /api/announcements/admin
func (h *AnnouncementHandler) ListForAdmin(ctx *fasthttp.RequestCtx) {
	list, err := h.service.ListForAdmin(ctx, subject(ctx))
	h.respond(ctx, "list_admin", list, err, fasthttp.StatusOK)
}

// GetBySlug handles GET /api/announcements/{slug}
func (h *AnnouncementHandler) GetBySlug(ctx *fasthttp.RequestCtx) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}
	details, err := h.service.GetBySlug(ctx, slug)
	h.respond(ctx, "get", details, err, fasthttp.StatusOK)
}

// GetBySlugForAdmin handles GET /api/announcements/admin/{slug}
func (h *AnnouncementHandler) GetBySlugForAdmin(ctx *fasthttp.RequestCtx) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}
	details, err := h.service.GetBySlugForAdmin(ctx, subject(ctx), slug)
	h.respond(ctx, "get_admin", details, err, fasthttp.StatusOK)
}

// Create handles POST /api/announcements
func (h *AnnouncementHandler) Create(ctx *fasthttp.RequestCtx) {
	var req dto.AnnouncementRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.badRequest(ctx, "create", "invalid request body")
		return
	}

	resp, err := h.service.Create(ctx, subject(ctx), &req)
	h.respond(ctx, "create", resp, err, fasthttp.StatusCreated)
}

// Update handles PUT /api/announcements
func (h *AnnouncementHandler) Update(ctx *fasthttp.RequestCtx) {
	var req dto.AnnouncementRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.badRequest(ctx, "update", "invalid request body")
		return
	}

	resp, err := h.service.Update(ctx, subject(ctx), &req)
	h.respond(ctx, "update", resp, err, fasthttp.StatusOK)
}

// Delete handles DELETE /api/announcements/{slug}
func (h *AnnouncementHandler) Delete(ctx *fasthttp.RequestCtx) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}
	err := h.service.Delete(ctx, subject(ctx), slug)
	h.respond(ctx, "delete", nil, err, fasthttp.StatusOK)
}

// UpdateViews handles PUT /api/announcements/{slug}/viewCount
func (h *AnnouncementHandler) UpdateViews(ctx *fasthttp.RequestCtx) {
	h.engage(ctx, "update_views", h.service.UpdateViews)
}

// UpdateShares handles PUT /api/announcements/{slug}/shareCount
func (h *AnnouncementHandler) UpdateShares(ctx *fasthttp.RequestCtx) {
	h.engage(ctx, "update_shares", h.service.UpdateShares)
}

// AddUpvote handles PUT /api/announcements/{slug}/addUpvote
func (h *AnnouncementHandler) AddUpvote(ctx *fasthttp.RequestCtx) {
	h.membership(ctx, "add_upvote", h.service.AddUpvote)
}

// RemoveUpvote handles PUT /api/announcements/{slug}/removeUpvote
func (h *AnnouncementHandler) RemoveUpvote(ctx *fasthttp.RequestCtx) {
	h.membership(ctx, "remove_upvote", h.service.RemoveUpvote)
}

// CheckUpvote handles GET /api/announcements/{slug}/checkUpvote
func (h *AnnouncementHandler) CheckUpvote(ctx *fasthttp.RequestCtx) {
	h.membership(ctx, "check_upvote", h.service.CheckUpvote)
}

// AddFavorite handles PUT /api/announcements/{slug}/addFavorite
func (h *AnnouncementHandler) AddFavorite(ctx *fasthttp.RequestCtx) {
	h.membership(ctx, "add_favorite", h.service.AddFavorite)
}

// RemoveFavorite handles PUT /api/announcements/{slug}/removeFavorite
func (h *AnnouncementHandler) RemoveFavorite(ctx *fasthttp.RequestCtx) {
	h.membership(ctx, "remove_favorite", h.service.RemoveFavorite)
}

// CheckFavorite handles GET /api/announcements/{slug}/checkFavorite
func (h *AnnouncementHandler) CheckFavorite(ctx *fasthttp.RequestCtx) {
	h.membership(ctx, "check_favorite", h.service.CheckFavorite)
}

// CreateComment handles POST /api/announcements/{slug}/comments
func (h *AnnouncementHandler) CreateComment(ctx *fasthttp.RequestCtx) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.badRequest(ctx, "create_comment", "invalid request body")
		return
	}

	resp, err := h.service.CreateComment(ctx, subject(ctx), slug, &req)
	h.respond(ctx, "create_comment", resp, err, fasthttp.StatusCreated)
}

// DeleteComment handles DELETE /api/announcements/comments/{slug}/{id}
func (h *AnnouncementHandler) DeleteComment(ctx *fasthttp.RequestCtx) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}

	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		h.badRequest(ctx, "delete_comment", "comment id must be a positive integer")
		return
	}

	err = h.service.DeleteComment(ctx, subject(ctx), slug, uint(id))
	h.respond(ctx, "delete_comment", nil, err, fasthttp.StatusOK)
}

type (
	engagementFunc func(ctx context.Context, subject *identity.User, slug string) (*dto.AnnouncementResponse, error)
	membershipFunc func(ctx context.Context, subject *identity.User, slug string) (*dto.UpvoteResponse, error)
)

func (h *AnnouncementHandler) engage(ctx *fasthttp.RequestCtx, op string, fn engagementFunc) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}
	resp, err := fn(ctx, subject(ctx), slug)
	h.respond(ctx, op, resp, err, fasthttp.StatusOK)
}

func (h *AnnouncementHandler) membership(ctx *fasthttp.RequestCtx, op string, fn membershipFunc) {
	slug, ok := h.slug(ctx)
	if !ok {
		return
	}
	resp, err := fn(ctx, subject(ctx), slug)
	h.respond(ctx, op, resp, err, fasthttp.StatusOK)
}

func (h *AnnouncementHandler) slug(ctx *fasthttp.RequestCtx) (string, bool) {
	slug, _ := ctx.UserValue("slug").(string)
	if slug == "" {
		httputil.WriteErrorResponse(ctx, "slug is required", fasthttp.StatusBadRequest)
		return "", false
	}
	return slug, true
}

func (h *AnnouncementHandler) badRequest(ctx *fasthttp.RequestCtx, op, msg string) {
	h.metrics.RecordOperationError(op, string(pkgerrors.KindValidation))
	httputil.WriteErrorResponse(ctx, msg, fasthttp.StatusBadRequest)
}

// respond writes data on success or the mapped error otherwise
func (h *AnnouncementHandler) respond(ctx *fasthttp.RequestCtx, op string, data interface{}, err error, status int) {
	if err != nil {
		h.metrics.RecordOperationError(op, string(pkgerrors.KindOf(err)))
		code, msg := h.mapper.MapErrorToHTTP(err)
		httputil.WriteErrorResponse(ctx, msg, code)
		return
	}

	h.metrics.RecordOperation(op)
	httputil.WriteResponseWithStatus(ctx, data, status)
}

func subject(ctx *fasthttp.RequestCtx) *identity.User {
	user, _ := identityhttp.Subject(ctx)
	return user
}

package blog

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/folio-space/core/internal/modules/storage"
	"github.com/folio-space/core/internal/pkg/pagination"
	pkgredis "github.com/folio-space/core/internal/pkg/redis"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc    *Service
	rc     *pkgredis.Client
	logger *zap.Logger
}

// NewHandler wires the blog routes. rc may be nil; the server-side like
// dedup is then skipped and only the client-side flag applies.
func NewHandler(svc *Service, rc *pkgredis.Client, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, rc: rc, logger: logger}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	blogs := rg.Group("/blogs")

	blogs.GET("", h.list)
	blogs.GET("/:slug", h.getBySlug)
	blogs.POST("/:slug/like", h.like)

	authed := blogs.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:slug", h.update) // :slug doubles as the record id on the admin surface
	authed.DELETE("/:slug", h.delete)
}

// list GET /blogs
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	blogs, pag, err := h.svc.List(q, lq, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]blogResponse, len(blogs))
	for i, b := range blogs {
		items[i] = toResponse(&b)
	}
	response.Paged(c, items, pag)
}

// getBySlug GET /blogs/:slug
// Falls back to lookup by id so the admin edit form can reuse the route.
func (h *Handler) getBySlug(c *gin.Context) {
	isAdmin := middleware.IsAuthenticated(c)

	b, err := h.svc.GetBySlug(c.Param("slug"), isAdmin)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil && isAdmin {
		b, err = h.svc.GetByID(c.Param("slug"))
		if err != nil {
			response.InternalError(c, err)
			return
		}
	}
	if b == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}

	// View counting must never delay or fail the read.
	go func(id string) {
		if err := h.svc.IncrementCounter(id, CounterViews); err != nil {
			h.logger.Warn("view increment failed", zap.String("id", id), zap.Error(err))
		}
	}(b.ID)

	response.OK(c, toResponse(b))
}

// like POST /blogs/:slug/like
// The browser's local flag is the primary dedup; this adds a best-effort
// server-side layer keyed by blog, day and client IP.
func (h *Handler) like(c *gin.Context) {
	b, err := h.svc.GetBySlug(c.Param("slug"), false)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		// The frontend sends the record id here, not the slug.
		b, err = h.svc.GetByID(c.Param("slug"))
		if err != nil {
			response.InternalError(c, err)
			return
		}
	}
	if b == nil || !b.IsPublished {
		response.NotFoundMsg(c, "article not found")
		return
	}

	if h.rc != nil {
		key := fmt.Sprintf("folio:like:%s:%s:%s", b.ID, time.Now().Format("2006-01-02"), c.ClientIP())
		if set, err := h.rc.SetNX(c.Request.Context(), key, 1, 24*time.Hour); err == nil && !set {
			response.BadRequest(c, "already liked today")
			return
		}
	}

	if err := h.svc.IncrementCounter(b.ID, CounterLikes); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// create POST /blogs  [auth]
func (h *Handler) create(c *gin.Context) {
	draft, file, ok := h.bindDraft(c)
	if !ok {
		return
	}

	b, err := h.svc.Create(c.Request.Context(), draft, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, toResponse(b))
}

// update PUT /blogs/:slug  [auth]
func (h *Handler) update(c *gin.Context) {
	draft, file, ok := h.bindDraft(c)
	if !ok {
		return
	}

	b, err := h.svc.Update(c.Request.Context(), c.Param("slug"), draft, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if b == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, toResponse(b))
}

// delete DELETE /blogs/:slug  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// bindDraft binds and validates the multipart form. Reports false after
// writing the error response.
func (h *Handler) bindDraft(c *gin.Context) (*BlogDraft, *media.File, bool) {
	var draft BlogDraft
	if err := c.ShouldBind(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return nil, nil, false
	}
	if missing := draft.Validate(); len(missing) > 0 {
		response.BadRequest(c, "missing required fields: "+strings.Join(missing, ", "))
		return nil, nil, false
	}

	file, err := FormMediaFile(c, "image")
	if err != nil {
		response.InternalError(c, err)
		return nil, nil, false
	}
	return &draft, file, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(c, ErrSlugTaken.Error())
	case errors.Is(err, storage.ErrStorageWrite):
		response.InternalError(c, err)
	default:
		response.InternalError(c, err)
	}
}

// FormMediaFile reads an optional multipart file field into a media.File.
// A missing field is not an error.
func FormMediaFile(c *gin.Context, field string) (*media.File, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readMediaFile(fileHeader)
}

func readMediaFile(fileHeader *multipart.FileHeader) (*media.File, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &media.File{
		Payload:     payload,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Name:        fileHeader.Filename,
	}, nil
}

package project

import (
	"strings"

	"github.com/folio-space/core/internal/modules/content/blog"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles project HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts project routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	projects := rg.Group("/projects")

	projects.GET("", h.list)
	projects.GET("/:id", h.get)

	authed := projects.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	projects, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = toResponse(&p)
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(p))
}

func (h *Handler) create(c *gin.Context) {
	draft, file, ok := h.bindDraft(c)
	if !ok {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), draft, file)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(p))
}

func (h *Handler) update(c *gin.Context) {
	draft, file, ok := h.bindDraft(c)
	if !ok {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), draft, file)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(p))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) bindDraft(c *gin.Context) (*ProjectDraft, *media.File, bool) {
	var draft ProjectDraft
	if err := c.ShouldBind(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return nil, nil, false
	}
	if missing := draft.Validate(); len(missing) > 0 {
		response.BadRequest(c, "missing required fields: "+strings.Join(missing, ", "))
		return nil, nil, false
	}

	file, err := blog.FormMediaFile(c, "image")
	if err != nil {
		response.InternalError(c, err)
		return nil, nil, false
	}
	return &draft, file, true
}

package resume

import (
	"github.com/folio-space/core/internal/modules/content/blog"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles resume HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts resume routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/resume", h.get)

	authed := rg.Group("", authMW)
	authed.PUT("/resume", h.save)
	authed.DELETE("/resume", h.delete)
}

// get GET /resume
func (h *Handler) get(c *gin.Context) {
	r, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if r == nil {
		response.NotFoundMsg(c, "no resume uploaded")
		return
	}
	response.OK(c, r)
}

// save PUT /resume  [auth]
func (h *Handler) save(c *gin.Context) {
	var draft ResumeDraft
	if err := c.ShouldBind(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	file, err := blog.FormMediaFile(c, "file")
	if err != nil {
		response.InternalError(c, err)
		return
	}

	r, err := h.svc.Save(c.Request.Context(), &draft, file)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, r)
}

// delete DELETE /resume  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

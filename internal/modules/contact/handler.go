package contact

import (
	"net/http"
	"strings"

	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles contact HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts contact routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/contact", h.submit)

	authed := rg.Group("/contacts", authMW)
	authed.GET("", h.list)
	authed.DELETE("/:id", h.delete)
}

// submit POST /contact
func (h *Handler) submit(c *gin.Context) {
	var draft ContactDraft
	if err := c.ShouldBind(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if missing := draft.Validate(); len(missing) > 0 {
		response.BadRequest(c, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if err := h.svc.Submit(&draft); err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}

// list GET /contacts  [auth]
func (h *Handler) list(c *gin.Context) {
	contacts, pag, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, contacts, pag)
}

// delete DELETE /contacts/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

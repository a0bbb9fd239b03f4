package comment

import (
	"errors"
	"strings"

	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles comment HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts comment routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	comments := rg.Group("/comments")

	comments.GET("", h.list)
	comments.POST("", h.create)

	authed := comments.Group("", authMW)
	authed.GET("/all", h.listAll)
	authed.DELETE("/:id", h.delete)
}

// list GET /comments?blog_id=...
func (h *Handler) list(c *gin.Context) {
	blogID := c.Query("blog_id")
	if blogID == "" {
		response.BadRequest(c, "missing required fields: blog_id")
		return
	}

	comments, err := h.svc.ListForBlog(blogID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, comments)
}

// listAll GET /comments/all  [auth]
func (h *Handler) listAll(c *gin.Context) {
	comments, pag, err := h.svc.ListAll(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, comments, pag)
}

// create POST /comments
func (h *Handler) create(c *gin.Context) {
	var draft CommentDraft
	if err := c.ShouldBind(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if missing := draft.Validate(); len(missing) > 0 {
		response.BadRequest(c, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	created, err := h.svc.Create(&draft)
	if err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			response.NotFoundMsg(c, ErrBlogNotFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, created)
}

// delete DELETE /comments/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

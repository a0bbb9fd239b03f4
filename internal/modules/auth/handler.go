package auth

import (
	"errors"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles admin authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	admin := rg.Group("/admin")

	admin.POST("/register", h.register)
	admin.POST("/login", h.login)

	authed := admin.Group("", authMW)
	authed.POST("/logout", h.logout)
	authed.GET("/me", h.me)
}

type loginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// login POST /admin/login
func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Username == "" || dto.Password == "" {
		response.BadRequest(c, "missing required fields: username, password")
		return
	}

	token, user, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"token": token, "user": user})
}

// logout POST /admin/logout  [auth]
func (h *Handler) logout(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	if err := h.svc.Logout(id.UserID, id.SessionID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// me GET /admin/me  [auth]
func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}

// register POST /admin/register
// First-run only; refuses once the admin account exists.
func (h *Handler) register(c *gin.Context) {
	var dto registerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Username == "" || dto.Password == "" {
		response.BadRequest(c, "missing required fields: username, password")
		return
	}

	user, err := h.svc.Register(dto.Username, dto.Password, dto.Name, dto.Email)
	if err != nil {
		if errors.Is(err, ErrAlreadyInitialized) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, user)
}

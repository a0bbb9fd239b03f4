package storage

import (
	"errors"
	"io"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the media endpoints used by the admin forms.
type Handler struct {
	store  MediaStore
	logger *zap.Logger
}

func NewHandler(store MediaStore, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload-image", authMW, h.upload)
	rg.POST("/delete-image", authMW, h.delete)
}

// upload POST /upload-image  [auth]
// Accepts multipart field "file", responds {secure_url, public_id}.
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	url, referenceID, err := h.store.Upload(
		c.Request.Context(), payload,
		fileHeader.Header.Get("Content-Type"), fileHeader.Filename,
	)
	if err != nil {
		h.logger.Error("media upload failed", zap.String("name", fileHeader.Filename), zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"secure_url": url,
		"public_id":  referenceID,
	})
}

type deleteDTO struct {
	PublicID string `json:"public_id"`
}

// delete POST /delete-image  [auth]
// Idempotent: deleting a missing or already-deleted object still succeeds.
func (h *Handler) delete(c *gin.Context) {
	var dto deleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.store.Delete(c.Request.Context(), dto.PublicID); err != nil {
		if errors.Is(err, ErrStorageDelete) {
			h.logger.Error("media delete failed", zap.String("public_id", dto.PublicID), zap.Error(err))
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

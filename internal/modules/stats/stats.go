// Package stats aggregates the counts shown on the admin dashboard.
package stats

import (
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Overview is the dashboard summary.
type Overview struct {
	Blogs          int64 `json:"blogs"`
	PublishedBlogs int64 `json:"published_blogs"`
	Projects       int64 `json:"projects"`
	Comments       int64 `json:"comments"`
	Contacts       int64 `json:"contacts"`
	TotalViews     int64 `json:"total_views"`
	TotalLikes     int64 `json:"total_likes"`
}

// Service computes dashboard statistics.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Overview counts every content type and sums the blog counters.
func (s *Service) Overview() (*Overview, error) {
	var o Overview

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.BlogModel{}, &o.Blogs},
		{&models.ProjectModel{}, &o.Projects},
		{&models.CommentModel{}, &o.Comments},
		{&models.ContactModel{}, &o.Contacts},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&models.BlogModel{}).
		Where("is_published = ?", true).Count(&o.PublishedBlogs).Error; err != nil {
		return nil, err
	}

	var sums struct {
		Views int64
		Likes int64
	}
	err := s.db.Model(&models.BlogModel{}).
		Select("COALESCE(SUM(views),0) AS views, COALESCE(SUM(likes),0) AS likes").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	o.TotalViews = sums.Views
	o.TotalLikes = sums.Likes

	return &o, nil
}

// Handler handles stats HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the stats route onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/stats", authMW, h.overview)
}

func (h *Handler) overview(c *gin.Context) {
	o, err := h.svc.Overview()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, o)
}

package project

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/folio-space/core/internal/modules/storage"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles project business logic.
type Service struct {
	db     *gorm.DB
	store  storage.MediaStore
	logger *zap.Logger
}

func NewService(db *gorm.DB, store storage.MediaStore, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, logger: logger}
}

// List returns a paginated list of projects, newest first.
func (s *Service) List(q pagination.Query) ([]models.ProjectModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProjectModel{}).Order("created_at DESC")

	var projects []models.ProjectModel
	pag, err := pagination.Paginate(tx, q, &projects)
	return projects, pag, err
}

// GetByID fetches a single project.
func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project from a draft.
func (s *Service) Create(ctx context.Context, draft *ProjectDraft, file *media.File) (*models.ProjectModel, error) {
	p := &models.ProjectModel{}
	draft.apply(p)

	resolved, err := media.Resolve(ctx, s.store, s.logger, media.Current{}, draft.MediaRequest(file))
	if err != nil {
		return nil, err
	}
	p.ImageURL = resolved.URL
	p.ImagePublicID = resolved.ReferenceID

	if err := s.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces a project from a draft.
func (s *Service) Update(ctx context.Context, id string, draft *ProjectDraft, file *media.File) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
	}

	next := *p
	draft.apply(&next)

	resolved, err := media.Resolve(ctx, s.store, s.logger,
		media.Current{URL: p.ImageURL, ReferenceID: p.ImagePublicID},
		draft.MediaRequest(file))
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":           next.Title,
		"description":     next.Description,
		"tech_stack":      next.TechStack,
		"live_url":        next.LiveURL,
		"image_url":       resolved.URL,
		"image_public_id": resolved.ReferenceID,
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete releases the uploaded image, then soft-deletes the project.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	media.Release(ctx, s.store, s.logger, media.Current{URL: p.ImageURL, ReferenceID: p.ImagePublicID})
	return s.db.Delete(&models.ProjectModel{}, "id = ?", id).Error
}

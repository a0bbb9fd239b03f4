package resume

import (
	"context"
	"errors"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/folio-space/core/internal/modules/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles the resume document. At most one row exists; saving again
// replaces it in place.
type Service struct {
	db     *gorm.DB
	store  storage.MediaStore
	logger *zap.Logger
}

func NewService(db *gorm.DB, store storage.MediaStore, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, logger: logger}
}

// ResumeDraft is the admin form payload. The PDF itself is extracted by the
// handler; file_mode "external" points at an externally hosted document.
type ResumeDraft struct {
	Label        string `form:"label"         json:"label"`
	FileMode     string `form:"file_mode"     json:"file_mode"`
	ExternalFile string `form:"external_file" json:"external_file"`
}

// MediaRequest maps the draft's file fields to the shared lifecycle helper.
func (d *ResumeDraft) MediaRequest(file *media.File) media.Request {
	mode := media.Mode(strings.TrimSpace(d.FileMode))
	if mode != media.ModeExternal {
		mode = media.ModeUpload
	}
	return media.Request{Mode: mode, File: file, ExternalURL: strings.TrimSpace(d.ExternalFile)}
}

// Get returns the current resume, or nil when none has been saved yet.
func (s *Service) Get() (*models.ResumeModel, error) {
	var r models.ResumeModel
	if err := s.db.Order("created_at DESC").First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Save creates or replaces the resume. A replaced upload releases the old
// stored object.
func (s *Service) Save(ctx context.Context, draft *ResumeDraft, file *media.File) (*models.ResumeModel, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, err
	}

	cur := media.Current{}
	if existing != nil {
		cur = media.Current{URL: existing.FileURL, ReferenceID: existing.FilePublicID}
	}

	resolved, err := media.Resolve(ctx, s.store, s.logger, cur, draft.MediaRequest(file))
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(draft.Label)

	if existing == nil {
		r := &models.ResumeModel{FileURL: resolved.URL, FilePublicID: resolved.ReferenceID, Label: label}
		if err := s.db.Create(r).Error; err != nil {
			return nil, err
		}
		return r, nil
	}

	updates := map[string]interface{}{
		"file_url":       resolved.URL,
		"file_public_id": resolved.ReferenceID,
		"label":          label,
	}
	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get()
}

// Delete releases the stored document and removes the row.
func (s *Service) Delete(ctx context.Context) error {
	existing, err := s.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	media.Release(ctx, s.store, s.logger, media.Current{URL: existing.FileURL, ReferenceID: existing.FilePublicID})
	return s.db.Delete(&models.ResumeModel{}, "id = ?", existing.ID).Error
}

package comment

import (
	"errors"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrBlogNotFound is returned when a comment targets a missing article.
var ErrBlogNotFound = errors.New("article not found")

// Service handles comment business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CommentDraft is the public comment form payload.
type CommentDraft struct {
	BlogID     string `json:"blog_id"     form:"blog_id"`
	AuthorName string `json:"author_name" form:"author_name"`
	Content    string `json:"content"     form:"content"`
}

// Validate returns the names of required fields that are missing.
func (d *CommentDraft) Validate() []string {
	var missing []string
	if strings.TrimSpace(d.BlogID) == "" {
		missing = append(missing, "blog_id")
	}
	if strings.TrimSpace(d.AuthorName) == "" {
		missing = append(missing, "author_name")
	}
	if strings.TrimSpace(d.Content) == "" {
		missing = append(missing, "content")
	}
	return missing
}

// ListForBlog returns every comment on one article, oldest first, so the
// thread reads top to bottom.
func (s *Service) ListForBlog(blogID string) ([]models.CommentModel, error) {
	var comments []models.CommentModel
	err := s.db.Where("blog_id = ?", blogID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// ListAll returns a paginated list across all articles for the admin panel,
// newest first, with the parent article preloaded.
func (s *Service) ListAll(q pagination.Query) ([]models.CommentModel, response.Pagination, error) {
	tx := s.db.Model(&models.CommentModel{}).Preload("Blog").Order("created_at DESC")

	var comments []models.CommentModel
	pag, err := pagination.Paginate(tx, q, &comments)
	return comments, pag, err
}

// Create inserts a comment after checking its article exists and is published.
func (s *Service) Create(draft *CommentDraft) (*models.CommentModel, error) {
	var count int64
	err := s.db.Model(&models.BlogModel{}).
		Where("id = ? AND is_published = ?", draft.BlogID, true).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrBlogNotFound
	}

	c := &models.CommentModel{
		BlogID:     draft.BlogID,
		AuthorName: strings.TrimSpace(draft.AuthorName),
		Content:    strings.TrimSpace(draft.Content),
	}
	if err := s.db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a comment. Deleting an already-gone comment is a no-op.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.CommentModel{}, "id = ?", id).Error
}

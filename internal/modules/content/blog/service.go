package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/folio-space/core/internal/modules/storage"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSlugTaken is returned when an insert or update collides on slug.
var ErrSlugTaken = errors.New("slug already exists")

// Counter names accepted by IncrementCounter.
const (
	CounterViews = "views"
	CounterLikes = "likes"
)

// Service handles blog business logic.
type Service struct {
	db     *gorm.DB
	store  storage.MediaStore
	logger *zap.Logger
}

func NewService(db *gorm.DB, store storage.MediaStore, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, logger: logger}
}

// ListQuery narrows List results.
type ListQuery struct {
	Category *string `form:"category"`
	Tag      *string `form:"tag"`
}

// List returns a paginated list of blogs, newest first. Anonymous callers
// only see published articles.
func (s *Service) List(q pagination.Query, lq ListQuery, isAdmin bool) ([]models.BlogModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogModel{}).Order("created_at DESC")
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if lq.Category != nil {
		tx = tx.Where("category = ?", *lq.Category)
	}
	if lq.Tag != nil {
		tx = tx.Where("JSON_CONTAINS(tags, ?)", fmt.Sprintf("%q", *lq.Tag))
	}

	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, q, &blogs)
	return blogs, pag, err
}

// GetBySlug fetches a single blog by slug.
func (s *Service) GetBySlug(slug string, isAdmin bool) (*models.BlogModel, error) {
	var b models.BlogModel
	tx := s.db.Where("slug = ?", slug)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// GetByID fetches a single blog by ID.
func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	var b models.BlogModel
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new blog from a draft.
func (s *Service) Create(ctx context.Context, draft *BlogDraft, file *media.File) (*models.BlogModel, error) {
	b := &models.BlogModel{}
	draft.apply(b)

	var count int64
	s.db.Model(&models.BlogModel{}).Where("slug = ?", b.Slug).Count(&count)
	if count > 0 {
		return nil, ErrSlugTaken
	}

	resolved, err := media.Resolve(ctx, s.store, s.logger, media.Current{}, draft.MediaRequest(file))
	if err != nil {
		return nil, err
	}
	b.ImageURL = resolved.URL
	b.ImagePublicID = resolved.ReferenceID

	b.IsPublished = draft.IsPublished
	if b.IsPublished {
		now := time.Now()
		b.PublishedAt = &now
	}

	if err := s.db.Create(b).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return b, nil
}

// Update replaces a blog from a draft. The admin edit form submits the
// entire record, so every column is written.
func (s *Service) Update(ctx context.Context, id string, draft *BlogDraft, file *media.File) (*models.BlogModel, error) {
	b, err := s.GetByID(id)
	if err != nil || b == nil {
		return b, err
	}

	next := *b
	draft.apply(&next)

	if next.Slug != b.Slug {
		var count int64
		s.db.Model(&models.BlogModel{}).Where("slug = ? AND id <> ?", next.Slug, id).Count(&count)
		if count > 0 {
			return nil, ErrSlugTaken
		}
	}

	resolved, err := media.Resolve(ctx, s.store, s.logger,
		media.Current{URL: b.ImageURL, ReferenceID: b.ImagePublicID},
		draft.MediaRequest(file))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"title":            next.Title,
		"slug":             next.Slug,
		"description":      next.Description,
		"content":          next.Content,
		"category":         next.Category,
		"tags":             next.Tags,
		"author_name":      next.AuthorName,
		"meta_title":       next.MetaTitle,
		"meta_description": next.MetaDescription,
		"image_url":        resolved.URL,
		"image_public_id":  resolved.ReferenceID,
		"is_published":     draft.IsPublished,
		"published_at":     publishedAtFor(b.IsPublished, b.PublishedAt, draft.IsPublished, now),
	}
	if err := s.db.Model(b).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return s.GetByID(id)
}

// Delete releases the uploaded cover image, then soft-deletes the blog.
func (s *Service) Delete(ctx context.Context, id string) error {
	b, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return nil
	}
	media.Release(ctx, s.store, s.logger, media.Current{URL: b.ImageURL, ReferenceID: b.ImagePublicID})
	return s.db.Delete(&models.BlogModel{}, "id = ?", id).Error
}

// IncrementCounter atomically bumps a counter column with a single
// UPDATE ... SET x = x + 1.
func (s *Service) IncrementCounter(id, counter string) error {
	column, err := counterColumn(counter)
	if err != nil {
		return err
	}
	return s.db.Model(&models.BlogModel{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

// IncrementCounterFallback bumps a counter by reading the current value and
// writing value+1. Kept for backends without expression updates; not atomic,
// concurrent bumps can overwrite each other (last write wins).
func (s *Service) IncrementCounterFallback(id, counter string) error {
	column, err := counterColumn(counter)
	if err != nil {
		return err
	}
	return incrementByReadModify(
		func() (int, error) {
			var value int
			err := s.db.Model(&models.BlogModel{}).Where("id = ?", id).
				Select(column).Scan(&value).Error
			return value, err
		},
		func(value int) error {
			return s.db.Model(&models.BlogModel{}).Where("id = ?", id).
				UpdateColumn(column, value).Error
		},
	)
}

func counterColumn(counter string) (string, error) {
	switch counter {
	case CounterViews:
		return "views", nil
	case CounterLikes:
		return "likes", nil
	default:
		return "", fmt.Errorf("unknown counter %q", counter)
	}
}

func incrementByReadModify(get func() (int, error), set func(int) error) error {
	value, err := get()
	if err != nil {
		return err
	}
	return set(value + 1)
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry violation.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		errors.Is(err, gorm.ErrDuplicatedKey)
}

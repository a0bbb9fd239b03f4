package blog

import (
	"strings"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/folio-space/core/internal/pkg/slug"
)

// BlogDraft is the admin form payload. Submits are multipart so a cover
// image can ride along; the file itself is extracted by the handler.
type BlogDraft struct {
	Title           string `form:"title"             json:"title"`
	Slug            string `form:"slug"              json:"slug"`
	Description     string `form:"description"       json:"description"`
	Content         string `form:"content"           json:"content"`
	Category        string `form:"category"          json:"category"`
	Tags            string `form:"tags"              json:"tags"` // comma-separated
	AuthorName      string `form:"author_name"       json:"author_name"`
	IsPublished     bool   `form:"is_published"      json:"is_published"`
	MetaTitle       string `form:"meta_title"        json:"meta_title"`
	MetaDescription string `form:"meta_description"  json:"meta_description"`
	ImageMode       string `form:"image_mode"        json:"image_mode"` // "upload" | "external"
	ExternalImage   string `form:"external_image"    json:"external_image"`
}

// Validate returns the names of required fields that are missing.
func (d *BlogDraft) Validate() []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(d.Content) == "" {
		missing = append(missing, "content")
	}
	return missing
}

// MediaRequest maps the draft's image fields to the shared lifecycle helper.
func (d *BlogDraft) MediaRequest(file *media.File) media.Request {
	mode := media.Mode(strings.TrimSpace(d.ImageMode))
	if mode != media.ModeExternal {
		mode = media.ModeUpload
	}
	return media.Request{Mode: mode, File: file, ExternalURL: strings.TrimSpace(d.ExternalImage)}
}

// SplitList turns comma-separated form input into a clean list.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList is the inverse of SplitList, used to refill edit forms.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// DerivedSlug returns the explicit slug, or one derived from the title when
// the slug field was left empty.
func (d *BlogDraft) DerivedSlug() string {
	if s := strings.TrimSpace(d.Slug); s != "" {
		return s
	}
	return slug.From(d.Title)
}

// apply copies the draft onto a model, computing the derived fields. Media
// and publish transitions are handled by the service.
func (d *BlogDraft) apply(m *models.BlogModel) {
	m.Title = strings.TrimSpace(d.Title)
	m.Slug = d.DerivedSlug()
	m.Description = strings.TrimSpace(d.Description)
	m.Content = d.Content
	m.Category = strings.TrimSpace(d.Category)
	m.Tags = SplitList(d.Tags)
	m.AuthorName = strings.TrimSpace(d.AuthorName)

	m.MetaTitle = strings.TrimSpace(d.MetaTitle)
	if m.MetaTitle == "" {
		m.MetaTitle = m.Title
	}
	m.MetaDescription = strings.TrimSpace(d.MetaDescription)
	if m.MetaDescription == "" {
		m.MetaDescription = m.Description
	}
}

type blogResponse struct {
	models.BlogModel
	TagsInput string `json:"tags_input"`
}

func toResponse(m *models.BlogModel) blogResponse {
	return blogResponse{
		BlogModel: *m,
		TagsInput: JoinList(m.Tags),
	}
}

// publishedAtFor computes the published_at transition for an update:
// first publish and republish stamp now, unpublish clears, otherwise the
// previous value is kept.
func publishedAtFor(wasPublished bool, prev *time.Time, isPublished bool, now time.Time) *time.Time {
	switch {
	case isPublished && !wasPublished:
		return &now
	case !isPublished:
		return nil
	default:
		return prev
	}
}

package project

import (
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/blog"
	"github.com/folio-space/core/internal/modules/content/media"
)

// ProjectDraft is the admin form payload for a portfolio project.
type ProjectDraft struct {
	Title         string `form:"title"           json:"title"`
	Description   string `form:"description"     json:"description"`
	TechStack     string `form:"tech_stack"      json:"tech_stack"` // comma-separated
	LiveURL       string `form:"live_url"        json:"live_url"`
	ImageMode     string `form:"image_mode"      json:"image_mode"`
	ExternalImage string `form:"external_image"  json:"external_image"`
}

// Validate returns the names of required fields that are missing.
func (d *ProjectDraft) Validate() []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	return missing
}

// MediaRequest maps the draft's image fields to the shared lifecycle helper.
func (d *ProjectDraft) MediaRequest(file *media.File) media.Request {
	mode := media.Mode(strings.TrimSpace(d.ImageMode))
	if mode != media.ModeExternal {
		mode = media.ModeUpload
	}
	return media.Request{Mode: mode, File: file, ExternalURL: strings.TrimSpace(d.ExternalImage)}
}

// apply copies the draft onto a model. Cards without a live deployment keep
// the "#" placeholder so the frontend link stays inert.
func (d *ProjectDraft) apply(m *models.ProjectModel) {
	m.Title = strings.TrimSpace(d.Title)
	m.Description = strings.TrimSpace(d.Description)
	m.TechStack = blog.SplitList(d.TechStack)

	m.LiveURL = strings.TrimSpace(d.LiveURL)
	if m.LiveURL == "" {
		m.LiveURL = "#"
	}
}

type projectResponse struct {
	models.ProjectModel
	TechStackInput string `json:"tech_stack_input"`
}

func toResponse(m *models.ProjectModel) projectResponse {
	return projectResponse{
		ProjectModel:   *m,
		TechStackInput: blog.JoinList(m.TechStack),
	}
}

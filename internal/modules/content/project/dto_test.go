package project

import (
	"testing"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/media"
	"github.com/stretchr/testify/assert"
)

func TestValidateReportsMissingFields(t *testing.T) {
	d := &ProjectDraft{}
	assert.Equal(t, []string{"title", "description"}, d.Validate())

	d = &ProjectDraft{Title: "Portfolio Site", Description: "This site."}
	assert.Empty(t, d.Validate())
}

func TestApplyDefaultsLiveURL(t *testing.T) {
	d := &ProjectDraft{Title: "CLI Tool", Description: "A tool.", TechStack: "go, cobra"}
	var m models.ProjectModel
	d.apply(&m)

	assert.Equal(t, "#", m.LiveURL)
	assert.Equal(t, models.StringArray{"go", "cobra"}, m.TechStack)

	d.LiveURL = " https://tool.example.com "
	var m2 models.ProjectModel
	d.apply(&m2)
	assert.Equal(t, "https://tool.example.com", m2.LiveURL)
}

func TestMediaRequestModeFallsBackToUpload(t *testing.T) {
	d := &ProjectDraft{ImageMode: "bogus"}
	assert.Equal(t, media.ModeUpload, d.MediaRequest(nil).Mode)

	d.ImageMode = "external"
	d.ExternalImage = "https://elsewhere.example.com/shot.png"
	req := d.MediaRequest(nil)
	assert.Equal(t, media.ModeExternal, req.Mode)
	assert.Equal(t, "https://elsewhere.example.com/shot.png", req.ExternalURL)
}

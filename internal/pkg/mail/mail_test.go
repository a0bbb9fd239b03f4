package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactNotify(t *testing.T) {
	html, err := RenderContactNotify(ContactNotifyData{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+44 1234",
		Subject:  "Collaboration",
		Message:  "I have a project idea.",
		SiteName: "ada.dev",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "ada@example.com")
	assert.Contains(t, html, "+44 1234")
	assert.Contains(t, html, "I have a project idea.")
	assert.Contains(t, html, "ada.dev")
}

func TestRenderContactNotifyOmitsEmptyPhone(t *testing.T) {
	html, err := RenderContactNotify(ContactNotifyData{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Hi",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "Phone:")
	assert.Contains(t, html, "Portfolio")
}

func TestRenderContactNotifyEscapesHTML(t *testing.T) {
	html, err := RenderContactNotify(ContactNotifyData{
		Name:    "<script>alert(1)</script>",
		Email:   "x@example.com",
		Subject: "s",
		Message: "m",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestSendDisabledIsNoop(t *testing.T) {
	s := New(Config{Enable: false})
	err := s.Send(Message{To: []string{"a@b.c"}, Subject: "x", HTML: "y"})
	assert.NoError(t, err)
}

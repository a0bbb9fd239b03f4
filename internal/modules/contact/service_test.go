package contact

import (
	"errors"
	"testing"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContactDraftValidate(t *testing.T) {
	d := &ContactDraft{}
	assert.Equal(t, []string{"user_name", "user_email", "user_subject", "message"}, d.Validate())

	d = &ContactDraft{
		UserName:    "Jamie",
		UserEmail:   "jamie@example.com",
		UserSubject: "Hiring",
		Message:     "Are you available?",
	}
	assert.Empty(t, d.Validate())

	// phone is optional
	d.UserPhone = ""
	assert.Empty(t, d.Validate())

	d.UserSubject = "   "
	assert.Equal(t, []string{"user_subject"}, d.Validate())
}

func sampleDraft() *ContactDraft {
	return &ContactDraft{
		UserName:    " Jamie ",
		UserEmail:   "jamie@example.com",
		UserPhone:   "555-0100",
		UserSubject: "Hiring",
		Message:     "Are you available?",
	}
}

func TestDispatchArchiveFailureIsSwallowed(t *testing.T) {
	var sent []mail.ContactNotifyData

	err := dispatch(sampleDraft(), "Folio", zap.NewNop(),
		func(*models.ContactModel) error { return errors.New("db down") },
		func(d mail.ContactNotifyData) error {
			sent = append(sent, d)
			return nil
		},
	)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "Jamie", sent[0].Name)
	assert.Equal(t, "Hiring", sent[0].Subject)
	assert.Equal(t, "Folio", sent[0].SiteName)
}

func TestDispatchMailFailureFailsSubmission(t *testing.T) {
	var archived []*models.ContactModel

	err := dispatch(sampleDraft(), "Folio", zap.NewNop(),
		func(r *models.ContactModel) error {
			archived = append(archived, r)
			return nil
		},
		func(mail.ContactNotifyData) error { return errors.New("smtp refused") },
	)
	require.Error(t, err)
	// the message is still archived even though the send failed
	require.Len(t, archived, 1)
	assert.Equal(t, "jamie@example.com", archived[0].Email)
}

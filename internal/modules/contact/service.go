package contact

import (
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier delivers the owner notification for a contact submission.
type Notifier interface {
	SendContactNotify(data mail.ContactNotifyData) error
}

// Service handles contact form submissions.
type Service struct {
	db       *gorm.DB
	notifier Notifier
	siteName string
	logger   *zap.Logger
}

func NewService(db *gorm.DB, notifier Notifier, siteName string, logger *zap.Logger) *Service {
	return &Service{db: db, notifier: notifier, siteName: siteName, logger: logger}
}

// ContactDraft is the public contact form payload. Field names match the
// frontend form exactly.
type ContactDraft struct {
	UserName    string `json:"user_name"    form:"user_name"`
	UserEmail   string `json:"user_email"   form:"user_email"`
	UserPhone   string `json:"user_phone"   form:"user_phone"`
	UserSubject string `json:"user_subject" form:"user_subject"`
	Message     string `json:"message"      form:"message"`
}

// Validate returns the names of required fields that are missing.
func (d *ContactDraft) Validate() []string {
	var missing []string
	if strings.TrimSpace(d.UserName) == "" {
		missing = append(missing, "user_name")
	}
	if strings.TrimSpace(d.UserEmail) == "" {
		missing = append(missing, "user_email")
	}
	if strings.TrimSpace(d.UserSubject) == "" {
		missing = append(missing, "user_subject")
	}
	if strings.TrimSpace(d.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

// Submit archives the message and notifies the owner. The archive insert is
// best effort: if it fails the notification still goes out, so only a mail
// failure fails the submission.
func (s *Service) Submit(draft *ContactDraft) error {
	return dispatch(draft, s.siteName, s.logger,
		func(record *models.ContactModel) error {
			return s.db.Create(record).Error
		},
		s.notifier.SendContactNotify,
	)
}

func dispatch(draft *ContactDraft, siteName string, logger *zap.Logger,
	archive func(*models.ContactModel) error,
	notify func(mail.ContactNotifyData) error,
) error {
	record := &models.ContactModel{
		Name:    strings.TrimSpace(draft.UserName),
		Email:   strings.TrimSpace(draft.UserEmail),
		Phone:   strings.TrimSpace(draft.UserPhone),
		Subject: strings.TrimSpace(draft.UserSubject),
		Message: strings.TrimSpace(draft.Message),
	}
	if err := archive(record); err != nil {
		logger.Error("failed to archive contact message", zap.String("email", record.Email), zap.Error(err))
	}

	return notify(mail.ContactNotifyData{
		Name:     record.Name,
		Email:    record.Email,
		Phone:    record.Phone,
		Subject:  record.Subject,
		Message:  record.Message,
		SiteName: siteName,
	})
}

// List returns archived messages for the admin panel, newest first.
func (s *Service) List(q pagination.Query) ([]models.ContactModel, response.Pagination, error) {
	tx := s.db.Model(&models.ContactModel{}).Order("created_at DESC")

	var contacts []models.ContactModel
	pag, err := pagination.Paginate(tx, q, &contacts)
	return contacts, pag, err
}

// Delete removes an archived message.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ContactModel{}, "id = ?", id).Error
}

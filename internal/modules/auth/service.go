package auth

import (
	"errors"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords
	// so the response does not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAlreadyInitialized is returned when register is called after the
	// admin account exists.
	ErrAlreadyInitialized = errors.New("admin account already exists")
)

// Service handles admin authentication.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Login verifies credentials and issues a session-bound token.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserModel, error) {
	var user models.UserModel
	err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := session.Issue(s.db, user.ID, ip, ua, session.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout revokes the backing session. Revoking an unknown session is not an
// error; the token is dead either way.
func (s *Service) Logout(userID, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	err := session.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// GetUser fetches the admin profile.
func (s *Service) GetUser(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Register creates the admin account on first run. Refuses once any user
// exists, making the endpoint inert after setup.
func (s *Service) Register(username, password, name, email string) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyInitialized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.UserModel{
		Username: strings.TrimSpace(username),
		Password: string(hash),
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
	}
	if user.Name == "" {
		user.Name = user.Username
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

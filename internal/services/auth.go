package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
	"github.com/creativeimage/wedding-portal/backend/internal/utils"
	"github.com/creativeimage/wedding-portal/backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
	mailer    Mailer
	portal    *config.PortalConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig, mailer Mailer, portal *config.PortalConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg, mailer: mailer, portal: portal}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	ExpireAt time.Time    `json:"expire_at"`
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !user.IsActive {
		return nil, errors.New("account is disabled")
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, errors.New("invalid email or password")
	}

	expireHours := s.jwtConfig.ExpireHour
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, expireHours)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Save(&user).Error; err != nil {
		// Login still succeeds; the stamp is informational.
		logger.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to record last login")
	}

	return &LoginResponse{
		Token:    token,
		User:     &user,
		ExpireAt: now.Add(time.Duration(expireHours) * time.Hour),
	}, nil
}

// GetUserByID returns a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateAdminIfNotExists seeds the default admin account on first boot.
func (s *AuthService) CreateAdminIfNotExists() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    "admin@admin.com",
		Password: hash,
		Name:     "Admin User",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Warn().Str("email", admin.Email).Msg("default admin created, change the password")
	return nil
}

type CreateClientRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// CreateClient registers a client account with a generated welcome password
// and emails the credentials. The welcome mail is best-effort; a failed send
// can be repeated with ResendWelcome.
func (s *AuthService) CreateClient(req *CreateClientRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)

	var existing int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&existing)
	if existing > 0 {
		return nil, fmt.Errorf("%w: user with email %s", ErrAlreadyExists, email)
	}

	plainPassword := generateWelcomePassword()
	hash, err := utils.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hash,
		Name:     req.Name,
		Role:     models.RoleClient,
		IsActive: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.sendWelcome(&user, plainPassword)
	return &user, nil
}

// ResendWelcome regenerates a client's password and re-sends the welcome mail.
func (s *AuthService) ResendWelcome(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.Email == "" {
		return ErrMissingEmail
	}

	plainPassword := generateWelcomePassword()
	hash, err := utils.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	if err := s.db.Model(&user).Update("password", hash).Error; err != nil {
		return err
	}

	s.sendWelcome(&user, plainPassword)
	return nil
}

func (s *AuthService) sendWelcome(user *models.User, plainPassword string) {
	subject := fmt.Sprintf("Bine ai venit pe portalul %s", s.portal.StudioName)
	body := buildWelcomeBody(user, plainPassword, s.portal)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("welcome email not sent")
	}
}

func generateWelcomePassword() string {
	// First UUID block gives 8 random hex chars, enough for a one-time password.
	return strings.Split(uuid.NewString(), "-")[0]
}

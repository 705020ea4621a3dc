package services

import (
	"errors"
	"log/slog"

	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"
	"github.com/natachabertin/urlshortener/pkg/utils"
)

type AuthService struct {
	users        *repository.UserRepository
	auditService *AuditService
	logger       *slog.Logger
}

func NewAuthService(users *repository.UserRepository, auditService *AuditService, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:        users,
		auditService: auditService,
		logger:       logger,
	}
}

// Register creates an account. A taken email is repository.ErrConflict.
func (s *AuthService) Register(email, password, ip string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := models.NewUser(email, hash, utils.GenerateAPIKey())
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.auditService.LogAction(&user.ID, "REGISTER", user.Email, nil, ip)
	return user, nil
}

// Authenticate checks email and password. Unknown account and wrong
// password collapse into the same ErrInvalidCredentials so the response
// cannot be used to enumerate users.
func (s *AuthService) Authenticate(email, password, ip string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.auditService.LogAction(nil, "LOGIN_FAILED", email, nil, ip)
		return nil, ErrInvalidCredentials
	}

	s.auditService.LogAction(&user.ID, "LOGIN", user.Email, nil, ip)
	return user, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *AuthService) GetUserByAPIKey(apiKey string) (*models.User, error) {
	return s.users.FindByAPIKey(apiKey)
}

func (s *AuthService) ListUsers(offset, limit int) ([]models.User, error) {
	return s.users.List(offset, limit)
}

// RotateAPIKey issues a fresh key for the account and returns it.
func (s *AuthService) RotateAPIKey(userID uint) (string, error) {
	key := utils.GenerateAPIKey()
	if err := s.users.UpdateAPIKey(userID, key); err != nil {
		return "", err
	}
	return key, nil
}

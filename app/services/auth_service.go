package services

import (
	"errors"
	"fmt"
	"time"

	"griddle/app/models"
	"griddle/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a login attempt fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenLifetime = 24 * time.Hour

// AuthService handles admin registration and login.
type AuthService struct {
	adminRepo repositories.AdminRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new admin account with a bcrypt-hashed password.
func (s *AuthService) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := admin.Validate(); err != nil {
		return err
	}
	return s.adminRepo.Create(admin)
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": admin.Username,
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

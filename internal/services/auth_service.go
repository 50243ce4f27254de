package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/agatodfddd/luxora-store/internal/config"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned for any bad login; it never says which
// part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Login checks the configured admin password and issues a session JWT.
	Login(username, password string) (string, time.Duration, error)
}

type authService struct {
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(security *config.SecurityConfig, logger *logger.Logger) AuthService {
	return &authService{
		security: security,
		logger:   logger,
	}
}

func (s *authService) Login(username, password string) (string, time.Duration, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.security.AdminPassword)) != 1 {
		s.logger.WithField("username", username).Warn("Failed admin login attempt")
		return "", 0, ErrInvalidCredentials
	}

	if username == "" {
		username = s.security.AdminUsername
	}

	now := time.Now()
	claims := AdminClaims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.security.AdminSessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.security.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	s.logger.WithField("username", username).Info("Admin logged in")

	return signed, s.security.AdminSessionTTL, nil
}

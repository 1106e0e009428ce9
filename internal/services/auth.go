package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the username or password does
	// not match the configured admin account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthNotConfigured is returned when the admin account has no
	// password hash configured.
	ErrAuthNotConfigured = errors.New("admin credentials not configured")
)

// AuthService verifies the single admin account against the configured
// bcrypt hash and hands out session tokens.
type AuthService struct {
	username     string
	passwordHash string
	sessions     *SessionService
}

func NewAuthService(username, passwordHash string, sessions *SessionService) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		sessions:     sessions,
	}
}

// Login checks the supplied credentials and returns a signed session token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if s.passwordHash == "" {
		return "", ErrAuthNotConfigured
	}
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.sessions.Generate(username)
}

// Verify validates a session token and returns the authenticated username.
func (s *AuthService) Verify(token string) (string, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return claims.Username, nil
}

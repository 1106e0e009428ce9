package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := NewSessionService("test-secret", 24*time.Hour)
	return NewAuthService("muntadher", string(hash), sessions)
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthService(t, "correct horse")

	token, err := svc.Login("muntadher", "correct horse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := setupAuthService(t, "correct horse")

	_, err := svc.Login("muntadher", "battery staple")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongUsername(t *testing.T) {
	svc := setupAuthService(t, "correct horse")

	_, err := svc.Login("someone-else", "correct horse")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := setupAuthService(t, "correct horse")

	_, err := svc.Login("", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("muntadher", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_NotConfigured(t *testing.T) {
	sessions := NewSessionService("test-secret", 24*time.Hour)
	svc := NewAuthService("muntadher", "", sessions)

	_, err := svc.Login("muntadher", "whatever")

	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestAuthService_Verify(t *testing.T) {
	svc := setupAuthService(t, "correct horse")

	token, err := svc.Login("muntadher", "correct horse")
	require.NoError(t, err)

	username, err := svc.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, "muntadher", username)
}

func TestAuthService_Verify_BadToken(t *testing.T) {
	svc := setupAuthService(t, "correct horse")

	_, err := svc.Verify("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

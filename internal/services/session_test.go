package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Generate(t *testing.T) {
	svc := NewSessionService("test-secret", 24*time.Hour)

	token, err := svc.Generate("muntadher")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSessionService_Validate_Valid(t *testing.T) {
	svc := NewSessionService("test-secret", 24*time.Hour)

	token, err := svc.Generate("muntadher")
	require.NoError(t, err)

	claims, err := svc.Validate(token)

	require.NoError(t, err)
	assert.Equal(t, "muntadher", claims.Username)
	assert.Equal(t, "muntadher", claims.Subject)
	assert.Equal(t, "nizam-api", claims.Issuer)
}

func TestSessionService_Validate_WrongSecret(t *testing.T) {
	svc1 := NewSessionService("secret-1", 24*time.Hour)
	svc2 := NewSessionService("secret-2", 24*time.Hour)

	token, err := svc1.Generate("muntadher")
	require.NoError(t, err)

	_, err = svc2.Validate(token)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestSessionService_Validate_Expired(t *testing.T) {
	svc := NewSessionService("test-secret", 1*time.Millisecond)

	token, err := svc.Generate("muntadher")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Validate(token)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestSessionService_Validate_MalformedToken(t *testing.T) {
	svc := NewSessionService("test-secret", 24*time.Hour)

	testCases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt-token"},
		{"partial jwt", "eyJhbGciOiJIUzI1NiJ9."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Validate(tc.token)
			assert.Error(t, err)
		})
	}
}

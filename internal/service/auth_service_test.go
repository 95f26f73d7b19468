package service

import (
	"testing"
	"time"

	"campus-compass-backend/internal/repository"
	"campus-compass-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	return NewAuthService(repository.NewUserRepo(db))
}

func TestSignup_ThenDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	userID, err := svc.Signup("20250001", "secret123", "kim")
	require.NoError(t, err)
	assert.NotZero(t, userID)

	_, err = svc.Signup("20250001", "other456", "park")
	assert.ErrorIs(t, err, ErrDuplicateStudentID)
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("20250001", "secret123", "kim")
	require.NoError(t, err)

	tokens, err := svc.Login("20250001", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The access token carries the student id as subject
	subject, err := utils.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "20250001", subject)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("20250001", "secret123", "kim")
	require.NoError(t, err)

	_, err = svc.Login("20250001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("unknown", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_IssuesNewAccessTokenWithoutRotation(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("20250001", "secret123", "kim")
	require.NoError(t, err)
	tokens, err := svc.Login("20250001", "secret123")
	require.NoError(t, err)

	accessToken, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	subject, err := utils.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "20250001", subject)

	// The refresh token is still usable afterwards
	_, err = svc.Refresh(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_UnknownToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Refresh("never-issued")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestSecondLogin_ReplacesRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("20250001", "secret123", "kim")
	require.NoError(t, err)

	first, err := svc.Login("20250001", "secret123")
	require.NoError(t, err)
	second, err := svc.Login("20250001", "secret123")
	require.NoError(t, err)

	_, err = svc.Refresh(first.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	_, err = svc.Refresh(second.RefreshToken)
	assert.NoError(t, err)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("20250001", "secret123", "kim")
	require.NoError(t, err)
	tokens, err := svc.Login("20250001", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(tokens.RefreshToken))

	_, err = svc.Refresh(tokens.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	// Logging out again fails: the token is gone
	assert.ErrorIs(t, svc.Logout(tokens.RefreshToken), repository.ErrRefreshTokenNotFound)
}

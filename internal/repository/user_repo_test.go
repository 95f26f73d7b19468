package repository

import (
	"testing"
	"time"

	"campus-compass-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRefreshToken_SingleRowPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	user := models.User{StudentID: "20250001", PasswordHash: "x", Nickname: "kim"}
	require.NoError(t, repo.CreateUser(&user))

	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.UpsertRefreshToken(user.ID, "hash-one", expires))
	require.NoError(t, repo.UpsertRefreshToken(user.ID, "hash-two", expires))

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The replaced token is gone, the new one resolves
	_, err := repo.FindRefreshTokenByHash("hash-one")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)

	token, err := repo.FindRefreshTokenByHash("hash-two")
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
	assert.Equal(t, "20250001", token.User.StudentID)
}

func TestDeleteRefreshTokenByHash(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	user := models.User{StudentID: "20250002", PasswordHash: "x", Nickname: "lee"}
	require.NoError(t, repo.CreateUser(&user))
	require.NoError(t, repo.UpsertRefreshToken(user.ID, "hash", time.Now().Add(time.Hour)))

	require.NoError(t, repo.DeleteRefreshTokenByHash("hash"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash("hash"), ErrRefreshTokenNotFound)
}

func TestFindUserByStudentID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	_, err := repo.FindUserByStudentID("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

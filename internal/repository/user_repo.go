package repository

import (
	"errors"
	"time"

	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByStudentID finds a user by student id
func (r *UserRepository) FindUserByStudentID(studentID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("student_id = ?", studentID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// UpsertRefreshToken stores a user's refresh token, replacing any
// existing row. Two concurrent logins resolve last-write-wins.
func (r *UserRepository) UpsertRefreshToken(userID uint, tokenHash string, expiresAt time.Time) error {
	var token models.RefreshToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.RefreshToken{
			UserID:    userID,
			TokenHash: tokenHash,
			ExpiresAt: expiresAt,
		}).Error
	}
	if err != nil {
		return err
	}

	return r.db.Model(&token).Updates(map[string]interface{}{
		"token_hash": tokenHash,
		"expires_at": expiresAt,
	}).Error
}

// FindRefreshTokenByHash finds a refresh token by its hash
func (r *UserRepository) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ?", hash).
		Preload("User").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// DeleteRefreshTokenByHash removes a refresh token by its hash
func (r *UserRepository) DeleteRefreshTokenByHash(hash string) error {
	result := r.db.Where("token_hash = ?", hash).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

package repository

import (
	"errors"

	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// CreateFavorite adds a favorite row for a user and room
func (r *FavoriteRepository) CreateFavorite(favorite *models.Favorite) error {
	err := r.db.Create(favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFavorite
	}
	return err
}

// FindByUserAndRoom finds a user's favorite for a specific room
func (r *FavoriteRepository) FindByUserAndRoom(userID, roomID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND room_id = ?", userID, roomID).First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// ListByUser retrieves a user's favorites with room info joined in
func (r *FavoriteRepository) ListByUser(userID uint) ([]models.FavoriteDetail, error) {
	var favorites []models.FavoriteDetail
	err := r.db.Table("favorites").
		Select("favorites.id AS favorite_id, rooms.id AS room_id, rooms.room_number, rooms.name AS room_name").
		Joins("JOIN rooms ON rooms.id = favorites.room_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at ASC, favorites.id ASC").
		Scan(&favorites).Error
	return favorites, err
}

// DeleteByUserAndRoom removes a user's favorite for a room
func (r *FavoriteRepository) DeleteByUserAndRoom(userID, roomID uint) error {
	result := r.db.Where("user_id = ? AND room_id = ?", userID, roomID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

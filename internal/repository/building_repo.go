package repository

import (
	"errors"

	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepo(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// ListBuildings retrieves all buildings ordered by name, case-insensitively
func (r *BuildingRepository) ListBuildings() ([]models.BuildingSummary, error) {
	var buildings []models.BuildingSummary
	err := r.db.Model(&models.Building{}).
		Select("id AS building_id, name, latitude, longitude").
		Order("LOWER(name) ASC").
		Scan(&buildings).Error
	return buildings, err
}

// GetBuildingByID retrieves a building header by ID
func (r *BuildingRepository) GetBuildingByID(id uint) (*models.Building, error) {
	var building models.Building
	err := r.db.Where("id = ?", id).First(&building).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, err
	}
	return &building, nil
}

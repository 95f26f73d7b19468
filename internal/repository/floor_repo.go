package repository

import (
	"errors"

	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

type FloorRepository struct {
	db *gorm.DB
}

func NewFloorRepo(db *gorm.DB) *FloorRepository {
	return &FloorRepository{db: db}
}

// GetFloorByID retrieves a floor by ID
func (r *FloorRepository) GetFloorByID(id uint) (*models.Floor, error) {
	var floor models.Floor
	err := r.db.Where("id = ?", id).First(&floor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}
	return &floor, nil
}

// ListFloorsOfBuilding retrieves a building's floors ordered by level,
// basement levels first
func (r *FloorRepository) ListFloorsOfBuilding(buildingID uint) ([]models.FloorSummary, error) {
	var floors []models.FloorSummary
	err := r.db.Model(&models.Floor{}).
		Select("id AS floor_id, level, name").
		Where("building_id = ?", buildingID).
		Order("level ASC").
		Scan(&floors).Error
	return floors, err
}

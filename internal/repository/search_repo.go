package repository

import (
	"strings"

	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

// SearchRepository runs the per-category queries behind federated search.
// Rooms and facilities join up through floors to buildings so every row
// comes back with coordinates and ancestor ids already resolved.
type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepo(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

func like(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

// SearchBuildings matches buildings by name
func (r *SearchRepository) SearchBuildings(query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	err := r.db.Model(&models.Building{}).
		Select("'BUILDING' AS type, id, name AS display_name, NULL AS sub_title, latitude, longitude, id AS building_id, NULL AS floor_id").
		Where("LOWER(name) LIKE ?", like(query)).
		Order("LOWER(name) ASC").
		Scan(&results).Error
	return results, err
}

// SearchRooms matches classrooms by name or room number. The room number
// doubles as the display name when present.
func (r *SearchRepository) SearchRooms(query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	err := r.db.Table("rooms").
		Select(`'ROOM' AS type, rooms.id AS id,
			COALESCE(rooms.room_number, rooms.name) AS display_name,
			rooms.name AS sub_title,
			buildings.latitude, buildings.longitude,
			buildings.id AS building_id, floors.id AS floor_id`).
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN buildings ON buildings.id = floors.building_id").
		Where("rooms.room_type = ?", models.RoomTypeClassroom).
		Where("(LOWER(rooms.name) LIKE ? OR LOWER(COALESCE(rooms.room_number, '')) LIKE ?)", like(query), like(query)).
		Order("CASE WHEN rooms.room_number IS NULL THEN 1 ELSE 0 END, rooms.room_number ASC, LOWER(rooms.name) ASC").
		Scan(&results).Error
	return results, err
}

// SearchFacilities matches facility rooms by name or features text
func (r *SearchRepository) SearchFacilities(query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	err := r.db.Table("rooms").
		Select(`'FACILITY' AS type, rooms.id AS id,
			rooms.name AS display_name,
			NULL AS sub_title,
			buildings.latitude, buildings.longitude,
			buildings.id AS building_id, floors.id AS floor_id`).
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN buildings ON buildings.id = floors.building_id").
		Where("rooms.room_type = ?", models.RoomTypeFacility).
		Where("(LOWER(rooms.name) LIKE ? OR LOWER(COALESCE(rooms.features, '')) LIKE ?)", like(query), like(query)).
		Order("LOWER(rooms.name) ASC").
		Scan(&results).Error
	return results, err
}

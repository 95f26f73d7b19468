package repository

import (
	"errors"
	"strings"

	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

// roomOrder places rooms with a room number first (ascending), then the
// rest alphabetically by name. NULL room numbers would otherwise sort first.
const roomOrder = "CASE WHEN room_number IS NULL THEN 1 ELSE 0 END, room_number ASC, LOWER(name) ASC"

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindRoomsInFloors retrieves all rooms across the given floors in one
// batch, ordered for display
func (r *RoomRepository) FindRoomsInFloors(floorIDs []uint) ([]models.RoomDetail, error) {
	var rooms []models.RoomDetail
	err := r.db.Model(&models.Room{}).
		Select("id AS room_id, room_number, name, room_type, capacity, features, operating_hours, floor_id").
		Where("floor_id IN ?", floorIDs).
		Order(roomOrder).
		Scan(&rooms).Error
	return rooms, err
}

// FindRoomsInFloor retrieves one floor's rooms, optionally filtered by a
// case-insensitive name/room-number substring
func (r *RoomRepository) FindRoomsInFloor(floorID uint, query string) ([]models.RoomDetail, error) {
	tx := r.db.Model(&models.Room{}).
		Select("id AS room_id, room_number, name, room_type, capacity, features, operating_hours, floor_id").
		Where("floor_id = ?", floorID)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(COALESCE(room_number, '')) LIKE ?)", like, like)
	}

	var rooms []models.RoomDetail
	err := tx.Order(roomOrder).Scan(&rooms).Error
	return rooms, err
}

// FindAvailableClassrooms retrieves the classrooms on a floor with no
// schedule entry overlapping the half-open window [start, end) on the
// given day. An entry ending exactly at the window start does not overlap.
func (r *RoomRepository) FindAvailableClassrooms(floorID uint, dayOfWeek int, start, end string) ([]models.AvailableRoom, error) {
	var rooms []models.AvailableRoom
	err := r.db.Model(&models.Room{}).
		Select("id AS room_id, room_number, name, capacity, features").
		Where("floor_id = ?", floorID).
		Where("room_type = ?", models.RoomTypeClassroom).
		Where(`NOT EXISTS (
			SELECT 1 FROM schedules
			WHERE schedules.room_id = rooms.id
			  AND schedules.day_of_week = ?
			  AND schedules.start_time < ?
			  AND schedules.end_time > ?
		)`, dayOfWeek, end, start).
		Order(roomOrder).
		Scan(&rooms).Error
	return rooms, err
}

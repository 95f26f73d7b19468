package repository

import (
	"campus-compass-backend/internal/models"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListRoomSchedules retrieves a room's weekly timetable ordered by day
// then start time
func (r *ScheduleRepository) ListRoomSchedules(roomID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Where("room_id = ?", roomID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

// FindBookedRoomIDs retrieves the ids of rooms with at least one schedule
// entry overlapping the half-open window [start, end) on the given day
func (r *ScheduleRepository) FindBookedRoomIDs(dayOfWeek int, start, end string) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Schedule{}).
		Where("day_of_week = ? AND start_time < ? AND end_time > ?", dayOfWeek, end, start).
		Distinct().
		Pluck("room_id", &ids).Error
	return ids, err
}

package service

import (
	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"
)

type RoomService struct {
	roomRepo     *repository.RoomRepository
	scheduleRepo *repository.ScheduleRepository
}

func NewRoomService(roomRepo *repository.RoomRepository, scheduleRepo *repository.ScheduleRepository) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		scheduleRepo: scheduleRepo,
	}
}

// GetRoomSchedules returns a room's weekly timetable ordered by day and
// start time
func (s *RoomService) GetRoomSchedules(roomID uint) ([]models.Schedule, error) {
	if _, err := s.roomRepo.GetRoomByID(roomID); err != nil {
		return nil, err
	}
	return s.scheduleRepo.ListRoomSchedules(roomID)
}

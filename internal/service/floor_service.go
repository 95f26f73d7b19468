package service

import (
	"time"

	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"
)

// timeLayout is the zero-padded wall-clock format used for schedule
// columns and query parameters. Lexicographic order equals temporal order.
const timeLayout = "15:04"

type FloorService struct {
	floorRepo *repository.FloorRepository
	roomRepo  *repository.RoomRepository
}

func NewFloorService(floorRepo *repository.FloorRepository, roomRepo *repository.RoomRepository) *FloorService {
	return &FloorService{
		floorRepo: floorRepo,
		roomRepo:  roomRepo,
	}
}

// GetAvailableRooms computes the classrooms on a floor with no schedule
// entry overlapping the half-open window [start, end) on the given day.
// Absent inputs default to the current day-of-week, the current time of
// day, and a two-hour window. A window crossing midnight (e.g. a default
// end computed from a 23:00 start) is rejected as an invalid range.
func (s *FloorService) GetAvailableRooms(floorID uint, dayOfWeek *int, start, end *time.Time) ([]models.AvailableRoom, error) {
	now := time.Now()

	dow := isoWeekday(now)
	if dayOfWeek != nil {
		dow = *dayOfWeek
	}
	if dow < 1 || dow > 7 {
		return nil, ErrInvalidDayOfWeek
	}

	startStr := now.Format(timeLayout)
	if start != nil {
		startStr = start.Format(timeLayout)
	}

	var endStr string
	if end != nil {
		endStr = end.Format(timeLayout)
	} else {
		st, _ := time.Parse(timeLayout, startStr)
		endStr = st.Add(2 * time.Hour).Format(timeLayout)
	}

	if endStr <= startStr {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.floorRepo.GetFloorByID(floorID); err != nil {
		return nil, err
	}

	return s.roomRepo.FindAvailableClassrooms(floorID, dow, startStr, endStr)
}

// ListFloorRooms returns one floor's rooms, optionally filtered by a
// name/room-number substring
func (s *FloorService) ListFloorRooms(floorID uint, query string) ([]models.RoomDetail, error) {
	if _, err := s.floorRepo.GetFloorByID(floorID); err != nil {
		return nil, err
	}
	return s.roomRepo.FindRoomsInFloor(floorID, query)
}

// isoWeekday maps Go's Sunday-based weekday to ISO numbering (1=Monday..7=Sunday)
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

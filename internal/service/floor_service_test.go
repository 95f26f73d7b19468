package service

import (
	"testing"
	"time"

	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFloorService(db *gorm.DB) *FloorService {
	return NewFloorService(repository.NewFloorRepo(db), repository.NewRoomRepo(db))
}

func clock(t *testing.T, hhmm string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return &parsed
}

// Scenario from the product example: Main Hall, floor 1, Room A with a
// Tuesday 09:00-10:00 slot.
func seedAvailabilityFixture(t *testing.T, db *gorm.DB) models.Floor {
	t.Helper()

	building := models.Building{Name: "Main Hall", Latitude: floatp(36.8), Longitude: floatp(127.1)}
	require.NoError(t, db.Create(&building).Error)

	floor := models.Floor{Level: 1, BuildingID: building.ID}
	require.NoError(t, db.Create(&floor).Error)

	room := models.Room{Name: "Room A", RoomType: models.RoomTypeClassroom, Capacity: intp(30), FloorID: floor.ID}
	require.NoError(t, db.Create(&room).Error)

	require.NoError(t, db.Create(&models.Schedule{
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "10:00",
		RoomID:    room.ID,
	}).Error)

	return floor
}

func TestGetAvailableRooms_OverlapExcluded(t *testing.T) {
	db := setupTestDB(t)
	floor := seedAvailabilityFixture(t, db)
	svc := newFloorService(db)

	dow := 2
	rooms, err := svc.GetAvailableRooms(floor.ID, &dow, clock(t, "09:30"), clock(t, "10:30"))
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestGetAvailableRooms_HalfOpenBoundaryIncluded(t *testing.T) {
	db := setupTestDB(t)
	floor := seedAvailabilityFixture(t, db)
	svc := newFloorService(db)

	dow := 2
	rooms, err := svc.GetAvailableRooms(floor.ID, &dow, clock(t, "10:00"), clock(t, "11:00"))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Room A", rooms[0].Name)
}

func TestGetAvailableRooms_InvalidRangeAlwaysValidation(t *testing.T) {
	db := setupTestDB(t)
	floor := seedAvailabilityFixture(t, db)
	svc := newFloorService(db)

	dow := 2

	_, err := svc.GetAvailableRooms(floor.ID, &dow, clock(t, "11:00"), clock(t, "10:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.GetAvailableRooms(floor.ID, &dow, clock(t, "10:00"), clock(t, "10:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// The range check fires even when the floor does not exist
	_, err = svc.GetAvailableRooms(9999, &dow, clock(t, "11:00"), clock(t, "10:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestGetAvailableRooms_UnknownFloor(t *testing.T) {
	db := setupTestDB(t)
	seedAvailabilityFixture(t, db)
	svc := newFloorService(db)

	dow := 2
	_, err := svc.GetAvailableRooms(9999, &dow, clock(t, "09:00"), clock(t, "10:00"))
	assert.ErrorIs(t, err, repository.ErrFloorNotFound)
}

func TestGetAvailableRooms_InvalidDayOfWeek(t *testing.T) {
	db := setupTestDB(t)
	floor := seedAvailabilityFixture(t, db)
	svc := newFloorService(db)

	for _, dow := range []int{0, 8, -1} {
		d := dow
		_, err := svc.GetAvailableRooms(floor.ID, &d, clock(t, "09:00"), clock(t, "10:00"))
		assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
	}
}

func TestGetAvailableRooms_EndDefaultsToStartPlusTwoHours(t *testing.T) {
	db := setupTestDB(t)
	floor := seedAvailabilityFixture(t, db)
	svc := newFloorService(db)

	// 08:30 + 2h overlaps the 09:00-10:00 slot
	dow := 2
	rooms, err := svc.GetAvailableRooms(floor.ID, &dow, clock(t, "08:30"), nil)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	// 23:00 + 2h wraps past midnight and is rejected
	_, err = svc.GetAvailableRooms(floor.ID, &dow, clock(t, "23:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestIsoWeekday(t *testing.T) {
	monday := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, isoWeekday(monday))
	sunday := monday.AddDate(0, 0, 6)
	assert.Equal(t, 7, isoWeekday(sunday))
}

func TestListFloorRooms_UnknownFloor(t *testing.T) {
	db := setupTestDB(t)
	svc := newFloorService(db)

	_, err := svc.ListFloorRooms(42, "")
	assert.ErrorIs(t, err, repository.ErrFloorNotFound)
}

package repository

import (
	"testing"

	"campus-compass-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Building{},
		&models.Floor{},
		&models.Room{},
		&models.Schedule{},
		&models.User{},
		&models.RefreshToken{},
		&models.Favorite{},
	)
	require.NoError(t, err)

	return db
}

func str(s string) *string { return &s }

func intp(i int) *int { return &i }

func floatp(f float64) *float64 { return &f }

// seedCampus creates one building with two floors and a mix of rooms.
// Returns the building and floors for tests to reference.
func seedCampus(t *testing.T, db *gorm.DB) (models.Building, models.Floor, models.Floor) {
	t.Helper()

	building := models.Building{
		Name:      "Main Hall",
		Latitude:  floatp(36.83),
		Longitude: floatp(127.18),
	}
	require.NoError(t, db.Create(&building).Error)

	first := models.Floor{Level: 1, BuildingID: building.ID}
	second := models.Floor{Level: 2, BuildingID: building.ID}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	rooms := []models.Room{
		{RoomNumber: str("101"), Name: "Lecture Room A", RoomType: models.RoomTypeClassroom, Capacity: intp(40), FloorID: first.ID},
		{RoomNumber: str("102"), Name: "Lecture Room B", RoomType: models.RoomTypeClassroom, Capacity: intp(60), FloorID: first.ID},
		{Name: "seminar room", RoomType: models.RoomTypeClassroom, Capacity: intp(20), FloorID: first.ID},
		{Name: "Cafeteria", RoomType: models.RoomTypeFacility, OperatingHours: str("09:00-18:00"), Features: "coffee, snacks", FloorID: first.ID},
		{RoomNumber: str("201"), Name: "Lecture Room C", RoomType: models.RoomTypeClassroom, Capacity: intp(30), FloorID: second.ID},
	}
	for i := range rooms {
		require.NoError(t, db.Create(&rooms[i]).Error)
	}

	return building, first, second
}

package service

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

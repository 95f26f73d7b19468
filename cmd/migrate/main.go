package main

import (
	"fmt"
	"log"
	"os"

	"campus-compass-backend/internal/config"
	"campus-compass-backend/internal/database"
	"campus-compass-backend/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "campus-migrate",
		Short: "Schema migration and dev seed data for campus-compass-backend",
	}

	rootCmd.AddCommand(upCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB() *gorm.DB {
	return database.Connect(config.LoadConfig())
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := openDB()
			if err := db.AutoMigrate(
				&models.Building{},
				&models.Floor{},
				&models.Room{},
				&models.Schedule{},
				&models.User{},
				&models.RefreshToken{},
				&models.Favorite{},
			); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Println("Schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a small demo campus for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := openDB()

			var count int64
			if err := db.Model(&models.Building{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				log.Println("Buildings already present, skipping seed")
				return nil
			}

			if err := seedDemoCampus(db); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			log.Println("Demo campus seeded")
			return nil
		},
	}
}

func seedDemoCampus(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		lat, lng := 36.839, 127.184
		building := models.Building{
			Name:        "Engineering Hall",
			Latitude:    &lat,
			Longitude:   &lng,
			Description: "Main engineering lecture building",
		}
		if err := tx.Create(&building).Error; err != nil {
			return err
		}

		lobby := "Lobby"
		basement := models.Floor{Level: -1, BuildingID: building.ID}
		ground := models.Floor{Level: 1, Name: &lobby, BuildingID: building.ID}
		second := models.Floor{Level: 2, BuildingID: building.ID}
		for _, f := range []*models.Floor{&basement, &ground, &second} {
			if err := tx.Create(f).Error; err != nil {
				return err
			}
		}

		num201, num202 := "201", "202"
		cap40, cap60 := 40, 60
		hours := "09:00-18:00"
		rooms := []models.Room{
			{RoomNumber: &num201, Name: "Lecture Room 201", RoomType: models.RoomTypeClassroom, Capacity: &cap40, Features: "projector, whiteboard", FloorID: second.ID},
			{RoomNumber: &num202, Name: "Lecture Room 202", RoomType: models.RoomTypeClassroom, Capacity: &cap60, Features: "projector, recording", FloorID: second.ID},
			{Name: "Seminar Room", RoomType: models.RoomTypeClassroom, Capacity: &cap40, FloorID: second.ID},
			{Name: "Cafeteria", RoomType: models.RoomTypeFacility, OperatingHours: &hours, Features: "meal plans accepted", FloorID: ground.ID},
			{Name: "Print Shop", RoomType: models.RoomTypeFacility, OperatingHours: &hours, FloorID: basement.ID},
		}
		for i := range rooms {
			if err := tx.Create(&rooms[i]).Error; err != nil {
				return err
			}
		}

		schedules := []models.Schedule{
			{CourseName: "Data Structures", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", RoomID: rooms[0].ID},
			{CourseName: "Operating Systems", DayOfWeek: 1, StartTime: "11:00", EndTime: "12:30", RoomID: rooms[0].ID},
			{CourseName: "Linear Algebra", DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00", RoomID: rooms[1].ID},
		}
		for i := range schedules {
			if err := tx.Create(&schedules[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

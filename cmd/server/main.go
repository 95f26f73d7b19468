package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-compass-backend/internal/config"
	"campus-compass-backend/internal/database"
	"campus-compass-backend/internal/handler"
	"campus-compass-backend/internal/middleware"
	"campus-compass-backend/internal/repository"
	"campus-compass-backend/internal/service"
	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	buildingRepo := repository.NewBuildingRepo(db)
	floorRepo := repository.NewFloorRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	searchRepo := repository.NewSearchRepo(db)
	userRepo := repository.NewUserRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)

	// 5. Initialize services
	buildingService := service.NewBuildingService(buildingRepo, floorRepo, roomRepo)
	floorService := service.NewFloorService(floorRepo, roomRepo)
	roomService := service.NewRoomService(roomRepo, scheduleRepo)
	searchService := service.NewSearchService(searchRepo)
	authService := service.NewAuthService(userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, userRepo, roomRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	buildingHandler := handler.NewBuildingHandler(buildingService)
	floorHandler := handler.NewFloorHandler(floorService)
	roomHandler := handler.NewRoomHandler(roomService)
	searchHandler := handler.NewSearchHandler(searchService)
	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "campus-compass-backend",
		})
	})

	api := r.Group("/api")
	{
		// Directory and search routes (open)
		api.GET("/buildings", buildingHandler.ListBuildings)
		api.GET("/buildings/:id", buildingHandler.GetBuilding)
		api.GET("/floors/:id/available-rooms", floorHandler.GetAvailableRooms)
		api.GET("/floors/:id/rooms", floorHandler.ListRooms)
		api.GET("/rooms/:id/schedules", roomHandler.GetSchedules)
		api.GET("/search", searchHandler.Search)

		// Auth routes (open)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		// Routes requiring a bearer token
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/favorites", favoriteHandler.Add)
			authed.GET("/favorites", favoriteHandler.List)
			authed.DELETE("/favorites", favoriteHandler.Delete)
		}
	}

	// 10. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campus-compass-backend/internal/middleware"
	"campus-compass-backend/internal/repository"
	"campus-compass-backend/internal/service"
	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

type AddFavoriteRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

// Add favorites a room for the authenticated user
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	studentID := c.GetString(middleware.StudentIDKey)

	favoriteID, err := h.favoriteService.AddFavorite(studentID, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrRoomNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, repository.ErrDuplicateFavorite):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to add favorite")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{"favoriteId": favoriteID})
}

// List returns the authenticated user's favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	studentID := c.GetString(middleware.StudentIDKey)

	favorites, err := h.favoriteService.ListFavorites(studentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	utils.SuccessResponse(c, favorites)
}

// Delete removes the authenticated user's favorite for ?roomId=
func (h *FavoriteHandler) Delete(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("roomId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	studentID := c.GetString(middleware.StudentIDKey)

	if err := h.favoriteService.RemoveFavorite(studentID, uint(roomID)); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound),
			errors.Is(err, repository.ErrRoomNotFound),
			errors.Is(err, repository.ErrFavoriteNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to remove favorite")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campus-compass-backend/internal/repository"
	"campus-compass-backend/internal/service"
	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// GetSchedules returns a room's weekly timetable
func (h *RoomHandler) GetSchedules(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	schedules, err := h.roomService.GetRoomSchedules(uint(roomID))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	utils.SuccessResponse(c, schedules)
}

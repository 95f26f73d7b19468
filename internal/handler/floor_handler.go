package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"campus-compass-backend/internal/repository"
	"campus-compass-backend/internal/service"
	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FloorHandler struct {
	floorService *service.FloorService
}

func NewFloorHandler(floorService *service.FloorService) *FloorHandler {
	return &FloorHandler{
		floorService: floorService,
	}
}

// GetAvailableRooms returns the classrooms on a floor that are free in
// the requested window. All three query parameters are optional;
// defaults are "today, from now, for two hours".
func (h *FloorHandler) GetAvailableRooms(c *gin.Context) {
	floorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid floor ID")
		return
	}

	var dayOfWeek *int
	if raw := c.Query("dayOfWeek"); raw != "" {
		dow, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "dayOfWeek must be a number")
			return
		}
		dayOfWeek = &dow
	}

	start, err := parseClock(c.Query("start"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "start must be in HH:mm format")
		return
	}
	end, err := parseClock(c.Query("end"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "end must be in HH:mm format")
		return
	}

	rooms, err := h.floorService.GetAvailableRooms(uint(floorID), dayOfWeek, start, end)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFloorNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTimeRange), errors.Is(err, service.ErrInvalidDayOfWeek):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch available rooms")
		}
		return
	}

	utils.SuccessResponse(c, rooms)
}

// ListRooms returns a floor's rooms, optionally filtered by ?query=
func (h *FloorHandler) ListRooms(c *gin.Context) {
	floorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid floor ID")
		return
	}

	rooms, err := h.floorService.ListFloorRooms(uint(floorID), c.Query("query"))
	if err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}

	utils.SuccessResponse(c, rooms)
}

// parseClock parses an optional "HH:mm" query parameter
func parseClock(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

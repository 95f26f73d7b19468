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

type BuildingHandler struct {
	buildingService *service.BuildingService
}

func NewBuildingHandler(buildingService *service.BuildingService) *BuildingHandler {
	return &BuildingHandler{
		buildingService: buildingService,
	}
}

// ListBuildings returns all buildings for the map pin layer
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingService.ListBuildings()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch buildings")
		return
	}

	utils.SuccessResponse(c, buildings)
}

// GetBuilding returns one building with its floors and rooms nested
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	buildingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	detail, err := h.buildingService.GetBuildingDetail(uint(buildingID))
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch building")
		return
	}

	utils.SuccessResponse(c, detail)
}

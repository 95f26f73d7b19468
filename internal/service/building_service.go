package service

import (
	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"
)

type BuildingService struct {
	buildingRepo *repository.BuildingRepository
	floorRepo    *repository.FloorRepository
	roomRepo     *repository.RoomRepository
}

func NewBuildingService(
	buildingRepo *repository.BuildingRepository,
	floorRepo *repository.FloorRepository,
	roomRepo *repository.RoomRepository,
) *BuildingService {
	return &BuildingService{
		buildingRepo: buildingRepo,
		floorRepo:    floorRepo,
		roomRepo:     roomRepo,
	}
}

// BuildingDetail is the nested building → floors → rooms response tree
type BuildingDetail struct {
	BuildingID  uint          `json:"buildingId"`
	Name        string        `json:"name"`
	Latitude    *float64      `json:"latitude"`
	Longitude   *float64      `json:"longitude"`
	Description string        `json:"description,omitempty"`
	Floors      []FloorDetail `json:"floors"`
}

// FloorDetail is one floor of a building with its rooms attached
type FloorDetail struct {
	FloorID uint                `json:"floorId"`
	Level   int                 `json:"level"`
	Name    *string             `json:"name"`
	Rooms   []models.RoomDetail `json:"rooms"`
}

// ListBuildings returns all buildings ordered by name
func (s *BuildingService) ListBuildings() ([]models.BuildingSummary, error) {
	return s.buildingRepo.ListBuildings()
}

// GetBuildingDetail assembles a building header with its floors ordered
// by level and each floor's rooms. Rooms are fetched across all floors in
// one batch and grouped in memory, so the assembly costs three queries
// regardless of floor count.
func (s *BuildingService) GetBuildingDetail(buildingID uint) (*BuildingDetail, error) {
	building, err := s.buildingRepo.GetBuildingByID(buildingID)
	if err != nil {
		return nil, err
	}

	detail := &BuildingDetail{
		BuildingID:  building.ID,
		Name:        building.Name,
		Latitude:    building.Latitude,
		Longitude:   building.Longitude,
		Description: building.Description,
		Floors:      []FloorDetail{},
	}

	floors, err := s.floorRepo.ListFloorsOfBuilding(buildingID)
	if err != nil {
		return nil, err
	}
	if len(floors) == 0 {
		return detail, nil
	}

	floorIDs := make([]uint, len(floors))
	for i, f := range floors {
		floorIDs[i] = f.FloorID
	}

	rooms, err := s.roomRepo.FindRoomsInFloors(floorIDs)
	if err != nil {
		return nil, err
	}

	roomsByFloor := make(map[uint][]models.RoomDetail, len(floors))
	for _, room := range rooms {
		roomsByFloor[room.FloorID] = append(roomsByFloor[room.FloorID], room)
	}

	for _, f := range floors {
		floorRooms := roomsByFloor[f.FloorID]
		if floorRooms == nil {
			floorRooms = []models.RoomDetail{}
		}
		detail.Floors = append(detail.Floors, FloorDetail{
			FloorID: f.FloorID,
			Level:   f.Level,
			Name:    f.Name,
			Rooms:   floorRooms,
		})
	}

	return detail, nil
}

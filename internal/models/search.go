package models

// Search result types. Sorting the merged list by type ascending yields
// BUILDING < FACILITY < ROOM blocks (alphabetical).
const (
	SearchTypeBuilding = "BUILDING"
	SearchTypeFacility = "FACILITY"
	SearchTypeRoom     = "ROOM"
)

// SearchResult is one row of the federated search response. Rooms and
// facilities carry the coordinates of their owning building so the map
// can drop a pin without further lookups.
type SearchResult struct {
	Type        string   `json:"type"`
	ID          uint     `json:"id"`
	DisplayName string   `json:"displayName"`
	SubTitle    *string  `json:"subTitle"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	BuildingID  uint     `json:"buildingId"`
	FloorID     *uint    `json:"floorId"`
}

package models

// Building represents the buildings table
// Latitude/longitude are stored as plain columns (no spatial types)
type Building struct {
	ID          uint     `gorm:"primaryKey" json:"buildingId"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `gorm:"type:text" json:"description,omitempty"`

	Floors []Floor `gorm:"foreignKey:BuildingID" json:"floors,omitempty"`
}

// TableName specifies the table name for Building model
func (Building) TableName() string {
	return "buildings"
}

// BuildingSummary is the flat projection returned by the building list endpoint
type BuildingSummary struct {
	BuildingID uint     `json:"buildingId"`
	Name       string   `json:"name"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

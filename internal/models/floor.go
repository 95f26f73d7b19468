package models

// Floor represents the floors table
// Level encodes vertical position and may be negative (basement = -1)
type Floor struct {
	ID         uint    `gorm:"primaryKey" json:"floorId"`
	Level      int     `gorm:"not null" json:"level"`
	Name       *string `gorm:"size:100" json:"name"`
	BuildingID uint    `gorm:"not null;index" json:"buildingId"`

	Building Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Rooms    []Room   `gorm:"foreignKey:FloorID" json:"rooms,omitempty"`
}

// TableName specifies the table name for Floor model
func (Floor) TableName() string {
	return "floors"
}

// FloorSummary is the flat projection used when assembling building detail
type FloorSummary struct {
	FloorID uint    `json:"floorId"`
	Level   int     `json:"level"`
	Name    *string `json:"name"`
}

package models

// Room types. Capacity and features are meaningful for classrooms,
// operating hours for facilities; the columns exist on every row.
const (
	RoomTypeClassroom = "CLASSROOM"
	RoomTypeFacility  = "FACILITY"
)

// Room represents the rooms table
type Room struct {
	ID             uint    `gorm:"primaryKey" json:"roomId"`
	RoomNumber     *string `gorm:"size:50" json:"roomNumber"`
	Name           string  `gorm:"size:255;not null" json:"name"`
	RoomType       string  `gorm:"size:20;not null" json:"roomType"`
	Capacity       *int    `json:"capacity"`
	Features       string  `gorm:"type:text" json:"features,omitempty"`
	OperatingHours *string `gorm:"size:100" json:"operatingHours"`
	FloorID        uint    `gorm:"not null;index" json:"floorId"`

	Floor Floor `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// RoomDetail is the flat room projection attached to floors in building detail
type RoomDetail struct {
	RoomID         uint    `json:"roomId"`
	RoomNumber     *string `json:"roomNumber"`
	Name           string  `json:"name"`
	RoomType       string  `json:"roomType"`
	Capacity       *int    `json:"capacity"`
	Features       string  `json:"features,omitempty"`
	OperatingHours *string `json:"operatingHours"`
	FloorID        uint    `json:"floorId"`
}

// AvailableRoom is a classroom with no overlapping schedule in the queried window
type AvailableRoom struct {
	RoomID     uint    `json:"roomId"`
	RoomNumber *string `json:"roomNumber"`
	Name       string  `json:"name"`
	Capacity   *int    `json:"capacity"`
	Features   string  `json:"features,omitempty"`
}

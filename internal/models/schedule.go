package models

// Schedule represents the schedules table: one recurring weekly
// occupancy slot of a room. DayOfWeek is ISO (1=Monday .. 7=Sunday).
// StartTime/EndTime are zero-padded "HH:MM" strings so lexicographic
// comparison in SQL matches temporal order.
type Schedule struct {
	ID         uint   `gorm:"primaryKey" json:"scheduleId"`
	CourseName string `gorm:"size:255" json:"courseName"`
	DayOfWeek  int    `gorm:"not null;index" json:"dayOfWeek"`
	StartTime  string `gorm:"size:5;not null" json:"startTime"`
	EndTime    string `gorm:"size:5;not null" json:"endTime"`
	RoomID     uint   `gorm:"not null;index" json:"roomId"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Schedule model
func (Schedule) TableName() string {
	return "schedules"
}

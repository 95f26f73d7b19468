package models

import "time"

// Favorite represents the favorites table.
// The composite unique index keeps a (user, room) pair to at most one row
// even under concurrent adds.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"favoriteId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_room" json:"userId"`
	RoomID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_room" json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Favorite model
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteDetail is the favorite list projection with room info joined in
type FavoriteDetail struct {
	FavoriteID uint    `json:"favoriteId"`
	RoomID     uint    `json:"roomId"`
	RoomNumber *string `json:"roomNumber"`
	RoomName   string  `json:"roomName"`
}

package repository

import "errors"

// Lookup failures surfaced to handlers as 404s. Kept as sentinels so
// services and handlers can branch with errors.Is.
var (
	ErrBuildingNotFound     = errors.New("building not found")
	ErrFloorNotFound        = errors.New("floor not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrFavoriteNotFound     = errors.New("favorite not found")

	// ErrDuplicateFavorite also covers the unique-index rejection when two
	// concurrent adds race past the existence pre-check.
	ErrDuplicateFavorite = errors.New("room already favorited")
)

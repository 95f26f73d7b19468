package service

import (
	"errors"

	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"
)

// FavoriteService manages a user's favorite rooms. The caller's identity
// is the student id threaded in from the auth middleware.
type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	userRepo     *repository.UserRepository
	roomRepo     *repository.RoomRepository
}

func NewFavoriteService(
	favoriteRepo *repository.FavoriteRepository,
	userRepo *repository.UserRepository,
	roomRepo *repository.RoomRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		roomRepo:     roomRepo,
	}
}

// AddFavorite favorites a room for the user and returns the new row's id.
// A (user, room) pair can exist at most once.
func (s *FavoriteService) AddFavorite(studentID string, roomID uint) (uint, error) {
	user, err := s.userRepo.FindUserByStudentID(studentID)
	if err != nil {
		return 0, err
	}

	room, err := s.roomRepo.GetRoomByID(roomID)
	if err != nil {
		return 0, err
	}

	if _, err := s.favoriteRepo.FindByUserAndRoom(user.ID, room.ID); err == nil {
		return 0, repository.ErrDuplicateFavorite
	} else if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return 0, err
	}

	favorite := &models.Favorite{
		UserID: user.ID,
		RoomID: room.ID,
	}
	if err := s.favoriteRepo.CreateFavorite(favorite); err != nil {
		return 0, err
	}

	return favorite.ID, nil
}

// ListFavorites returns all of the user's favorites with room info
func (s *FavoriteService) ListFavorites(studentID string) ([]models.FavoriteDetail, error) {
	user, err := s.userRepo.FindUserByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	return s.favoriteRepo.ListByUser(user.ID)
}

// RemoveFavorite deletes the user's favorite for a room
func (s *FavoriteService) RemoveFavorite(studentID string, roomID uint) error {
	user, err := s.userRepo.FindUserByStudentID(studentID)
	if err != nil {
		return err
	}

	room, err := s.roomRepo.GetRoomByID(roomID)
	if err != nil {
		return err
	}

	return s.favoriteRepo.DeleteByUserAndRoom(user.ID, room.ID)
}

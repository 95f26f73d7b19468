package service

import (
	"errors"
	"fmt"
	"time"

	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"
	"campus-compass-backend/pkg/utils"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// TokenPair is the login response: a short-lived access token and an
// opaque refresh token
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Signup registers a new user and returns its id. Fails if the student id
// is already registered.
func (s *AuthService) Signup(studentID, password, nickname string) (uint, error) {
	if _, err := s.userRepo.FindUserByStudentID(studentID); err == nil {
		return 0, ErrDuplicateStudentID
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return 0, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		StudentID:    studentID,
		PasswordHash: passwordHash,
		Nickname:     nickname,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}

// Login authenticates a user and issues a token pair. The refresh token
// row is one-per-user: logging in again replaces the previous token.
func (s *AuthService) Login(studentID, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindUserByStudentID(studentID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(utils.GetRefreshTokenExpiry())
	if err := s.userRepo.UpsertRefreshToken(user.ID, utils.HashRefreshToken(refreshToken), expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh issues a new access token for a valid server-side refresh
// token. The refresh token itself is not rotated.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	token, err := s.userRepo.FindRefreshTokenByHash(utils.HashRefreshToken(refreshToken))
	if err != nil {
		return "", err
	}

	if time.Now().After(token.ExpiresAt) {
		return "", ErrRefreshTokenExpired
	}

	accessToken, err := utils.GenerateAccessToken(token.User.StudentID)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token. Outstanding access tokens stay valid
// until their natural expiry.
func (s *AuthService) Logout(refreshToken string) error {
	return s.userRepo.DeleteRefreshTokenByHash(utils.HashRefreshToken(refreshToken))
}

// GetProfile returns the user behind an authenticated student id
func (s *AuthService) GetProfile(studentID string) (*models.User, error) {
	return s.userRepo.FindUserByStudentID(studentID)
}

package handler

import (
	"errors"
	"net/http"

	"campus-compass-backend/internal/middleware"
	"campus-compass-backend/internal/repository"
	"campus-compass-backend/internal/service"
	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type SignupRequest struct {
	StudentID string `json:"student_id" binding:"required,min=4,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Nickname  string `json:"nickname" binding:"required,max=100"`
}

type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Signup handles user registration
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := h.authService.Signup(req.StudentID, req.Password, req.Nickname)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateStudentID) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.CreatedResponse(c, gin.H{"userId": userID})
}

// Login authenticates a user and returns an access/refresh token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokens, err := h.authService.Login(req.StudentID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, tokens)
}

// Refresh issues a new access token from a refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	accessToken, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRefreshTokenNotFound), errors.Is(err, service.ErrRefreshTokenExpired):
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"accessToken": accessToken})
}

// Logout revokes a refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.MessageResponse(c, "Logged out successfully")
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	studentID := c.GetString(middleware.StudentIDKey)

	user, err := h.authService.GetProfile(studentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":        user.ID,
		"studentId": user.StudentID,
		"nickname":  user.Nickname,
	})
}

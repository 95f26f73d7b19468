package middleware

import (
	"net/http"
	"strings"

	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StudentIDKey is the gin context key holding the authenticated student id
const StudentIDKey = "studentID"

// AuthMiddleware validates the JWT access token from the Authorization
// header and injects the student id into the request context. A missing,
// malformed or expired token rejects the request; open routes simply do
// not use this middleware.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		studentID, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(StudentIDKey, studentID)

		c.Next()
	}
}

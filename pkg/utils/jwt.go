package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
)

// InitJWT initializes the signing secret and expiry times
func InitJWT(secret string, accessExp, refreshExp time.Duration) {
	jwtSecret = secret
	accessExpiry = accessExp
	refreshExpiry = refreshExp
}

// GenerateAccessToken generates a short-lived HS256 token with the
// student id as subject
func GenerateAccessToken(studentID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   studentID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessExpiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GenerateRefreshToken generates an opaque refresh token. The raw value
// goes to the client; only its hash is stored server-side.
func GenerateRefreshToken() (string, error) {
	return uuid.New().String(), nil
}

// ValidateAccessToken validates a token and returns the student id subject
func ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}

// HashRefreshToken creates a SHA-256 hash of the refresh token for storage
func HashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// GetRefreshTokenExpiry returns the refresh token expiry duration
func GetRefreshTokenExpiry() time.Duration {
	return refreshExpiry
}

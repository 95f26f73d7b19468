package service

import "errors"

// Validation failures surfaced to handlers as 400/401s.
var (
	ErrInvalidTimeRange    = errors.New("end must be after start")
	ErrInvalidDayOfWeek    = errors.New("dayOfWeek must be between 1 (Monday) and 7 (Sunday)")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateStudentID  = errors.New("student id already registered")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

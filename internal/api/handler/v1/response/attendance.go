package response

import (
	"time"

	"github.com/jaribu/attendance-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// ScannerDataResponse tells the check-in station which session it should be
// verifying against right now.
type ScannerDataResponse struct {
	Day        string         `json:"day"`
	Session    domain.Session `json:"session"`
	IsCurrent  bool           `json:"is_current"`
	Simulation bool           `json:"simulation"`
	ServerTime time.Time      `json:"server_time"`
}

type AvailableSessionsResponse struct {
	Day      string                       `json:"day"`
	Sessions []domain.SessionAvailability `json:"sessions"`
}

type AttendanceHistoryResponse struct {
	Participant domain.Participant              `json:"participant"`
	History     []domain.AttendanceHistoryEntry `json:"history"`
}

type ResetSessionsResponse struct {
	Day        string `json:"day"`
	MovedCount int    `json:"moved_count"`
}

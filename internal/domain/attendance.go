package domain

import "time"

// Check-in methods recorded on attendance rows.
const (
	CheckInQRCode = "qr_code"
	CheckInManual = "manual"
)

// Attendance is an append-only log entry. One row is written per scan, even
// for a repeated scan of the same participant at the same session; each scan
// is an event, not a state assertion.
type Attendance struct {
	ID               uint      `json:"id"`
	ParticipantID    uint      `json:"participant_id"`
	SessionID        uint      `json:"session_id"`
	Timestamp        time.Time `json:"timestamp"`
	IsCorrectSession bool      `json:"is_correct_session"`
	CheckInMethod    string    `json:"check_in_method"`
}

// Verification statuses returned to the scanner UI.
const (
	StatusCorrectSession = "correct_session"
	StatusWrongSession   = "wrong_session"
)

// VerificationResult is the outcome of one check-in scan.
type VerificationResult struct {
	Status             string      `json:"status"`
	Message            string      `json:"message"`
	Participant        Participant `json:"participant"`
	ScannedSession     Session     `json:"scanned_session"`
	CorrectSession     *Session    `json:"correct_session,omitempty"`
	AttendanceRecorded bool        `json:"attendance_recorded"`
	Timestamp          time.Time   `json:"timestamp"`
}

// AttendanceHistoryEntry is one row of a participant's attendance history.
type AttendanceHistoryEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	SessionDay     string    `json:"session_day"`
	SessionSlot    string    `json:"session_slot"`
	CorrectSession bool      `json:"correct_session"`
}

package domain

import "time"

// Reassignment request lifecycle. A request is mutated exactly once, from
// pending to approved or rejected.
const (
	ReassignmentPending  = "pending"
	ReassignmentApproved = "approved"
	ReassignmentRejected = "rejected"
)

// MaxReassignments caps how many approved reassignments a participant may
// accumulate across both days.
const MaxReassignments = 2

type ReassignmentRequest struct {
	ID            uint   `json:"id"`
	ParticipantID uint   `json:"participant_id"`

	// CurrentSessionID is a snapshot of the participant's assignment at
	// request time, not a live pointer.
	CurrentSessionID   uint   `json:"current_session_id"`
	RequestedSessionID uint   `json:"requested_session_id"`
	DayType            string `json:"day_type"`
	Reason             string `json:"reason"`

	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes,omitempty"`
	ReviewedBy uint   `json:"reviewed_by,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

// RequestSummary is the listing shape for participant and admin views. The
// participant detail is only populated for the admin view.
type RequestSummary struct {
	ID               uint         `json:"id"`
	DayType          string       `json:"day_type"`
	CurrentSession   string       `json:"current_session"`
	RequestedSession string       `json:"requested_session"`
	Reason           string       `json:"reason"`
	Status           string       `json:"status"`
	AdminNotes       string       `json:"admin_notes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	Participant      *Participant `json:"participant,omitempty"`
}

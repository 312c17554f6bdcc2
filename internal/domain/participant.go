package domain

import "time"

type Participant struct {
	ID       uint   `json:"id"`
	UniqueID string `json:"unique_id"`
	Email    string `json:"email"`

	Surname    string `json:"surname"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name,omitempty"`

	Phone     string `json:"phone"`
	HasLaptop bool   `json:"has_laptop"`

	// Classroom is derived from HasLaptop at creation time and never changes
	// afterwards, even if the laptop flag is corrected later.
	Classroom string `json:"classroom"`

	SaturdaySessionID uint `json:"saturday_session_id"`
	SundaySessionID   uint `json:"sunday_session_id"`

	ReassignmentsCount int `json:"reassignments_count"`

	QRCodePath            string    `json:"qrcode_path,omitempty"`
	RegistrationTimestamp time.Time `json:"registration_timestamp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins the name parts, skipping an absent second name.
func (p Participant) FullName() string {
	if p.SecondName != "" {
		return p.FirstName + " " + p.SecondName + " " + p.Surname
	}
	return p.FirstName + " " + p.Surname
}

// SessionIDFor returns the participant's assigned session id for the given day.
func (p Participant) SessionIDFor(day string) uint {
	if day == DaySaturday {
		return p.SaturdaySessionID
	}
	return p.SundaySessionID
}

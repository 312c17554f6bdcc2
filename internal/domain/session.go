package domain

// Day values for the two course days. Sessions only exist on weekends.
const (
	DaySaturday = "Saturday"
	DaySunday   = "Sunday"
)

// IsValidDay reports whether day names one of the two course days.
func IsValidDay(day string) bool {
	return day == DaySaturday || day == DaySunday
}

type Session struct {
	ID       uint   `json:"id"`
	Day      string `json:"day"`
	TimeSlot string `json:"time_slot"`
}

// CapacitySnapshot describes seat usage of one (session, classroom) pair at a
// moment in time. Available can be negative when pre-existing data is already
// over quota; callers must treat negative as zero availability.
type CapacitySnapshot struct {
	Total            int     `json:"total"`
	Used             int     `json:"used"`
	Available        int     `json:"available"`
	PercentageFilled float64 `json:"percentage_filled"`
}

// SessionAvailability is one row of the available-sessions listing.
type SessionAvailability struct {
	Session     Session          `json:"session"`
	Capacity    CapacitySnapshot `json:"capacity"`
	HasCapacity bool             `json:"has_capacity"`
}

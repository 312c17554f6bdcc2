package domain

// DefaultClassroomQuota is used when a classroom has no configured capacity.
const DefaultClassroomQuota = 30

// ClassroomPlan is the classroom configuration: which room takes participants
// with laptops, which takes the rest, and the seat quota of each room.
// Classrooms are configuration keys, not stored entities; occupancy is always
// derived from participant assignments.
type ClassroomPlan struct {
	LaptopRoom   string
	NoLaptopRoom string
	Quotas       map[string]int
}

// RoomFor picks the classroom for a participant based on laptop availability.
func (p ClassroomPlan) RoomFor(hasLaptop bool) string {
	if hasLaptop {
		return p.LaptopRoom
	}
	return p.NoLaptopRoom
}

// QuotaFor returns the configured seat quota of a classroom, falling back to
// DefaultClassroomQuota when the room is unconfigured.
func (p ClassroomPlan) QuotaFor(classroom string) int {
	if q, ok := p.Quotas[classroom]; ok {
		return q
	}
	return DefaultClassroomQuota
}

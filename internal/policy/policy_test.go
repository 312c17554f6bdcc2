package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		action   string
		resource string
		want     bool
	}{
		{"admin views participants", "admin", ActionView, ResourceParticipants, true},
		{"admin resets participants", "admin", ActionReset, ResourceParticipants, true},
		{"admin creates users", "admin", ActionCreate, ResourceUsers, true},
		{"staff views reassignments", "staff", ActionView, ResourceReassignments, true},
		{"staff processes reassignments", "staff", ActionProcess, ResourceReassignments, true},
		{"staff creates participants", "staff", ActionCreate, ResourceParticipants, true},
		{"staff cannot reset participants", "staff", ActionReset, ResourceParticipants, false},
		{"staff cannot create users", "staff", ActionCreate, ResourceUsers, false},
		{"unknown role denied", "participant", ActionView, ResourceParticipants, false},
		{"empty role denied", "", ActionView, ResourceParticipants, false},
		{"unknown action denied", "admin", "delete", ResourceParticipants, false},
		{"unknown resource denied", "admin", ActionView, "config", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.role, tt.action, tt.resource))
		})
	}
}

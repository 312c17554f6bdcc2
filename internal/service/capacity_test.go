package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaribu/attendance-api/internal/domain"
)

func TestCapacity_Quota(t *testing.T) {
	capacity := NewCapacity(newFakeParticipantRepo(), testPlan)

	assert.Equal(t, 50, capacity.Quota("205"))
	assert.Equal(t, 30, capacity.Quota("203"))
	assert.Equal(t, domain.DefaultClassroomQuota, capacity.Quota("unknown-room"))
}

func TestCapacity_OccupancyIsMaxOfDayCounts(t *testing.T) {
	participants := newFakeParticipantRepo()

	// Three Saturday seats and one Sunday seat in session 1 for room 205.
	participants.add(domain.Participant{Classroom: "205", SaturdaySessionID: 1, SundaySessionID: 2})
	participants.add(domain.Participant{Classroom: "205", SaturdaySessionID: 1, SundaySessionID: 2})
	participants.add(domain.Participant{Classroom: "205", SaturdaySessionID: 1, SundaySessionID: 1})
	// Different classroom, must not count.
	participants.add(domain.Participant{Classroom: "203", SaturdaySessionID: 1, SundaySessionID: 1})

	capacity := NewCapacity(participants, testPlan)

	occupancy, err := capacity.Occupancy(context.Background(), 1, "205")
	require.NoError(t, err)
	assert.Equal(t, 3, occupancy)
}

func TestCapacity_AvailableCanGoNegative(t *testing.T) {
	participants := newFakeParticipantRepo()
	for i := 0; i < 3; i++ {
		participants.add(domain.Participant{Classroom: "203", SaturdaySessionID: 1})
	}

	plan := func() domain.ClassroomPlan {
		return domain.ClassroomPlan{
			LaptopRoom:   "205",
			NoLaptopRoom: "203",
			Quotas:       map[string]int{"203": 2},
		}
	}
	capacity := NewCapacity(participants, plan)

	available, err := capacity.Available(context.Background(), 1, "203")
	require.NoError(t, err)
	assert.Equal(t, -1, available)
}

func TestCapacity_Snapshot(t *testing.T) {
	participants := newFakeParticipantRepo()
	for i := 0; i < 25; i++ {
		participants.add(domain.Participant{Classroom: "205", SaturdaySessionID: 7})
	}

	capacity := NewCapacity(participants, testPlan)

	snapshot, err := capacity.Snapshot(context.Background(), 7, "205")
	require.NoError(t, err)
	assert.Equal(t, domain.CapacitySnapshot{
		Total:            50,
		Used:             25,
		Available:        25,
		PercentageFilled: 50,
	}, snapshot)
}

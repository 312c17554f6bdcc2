package service

import (
	"context"
	"fmt"

	"github.com/jaribu/attendance-api/internal/domain"
)

type CapacityParticipantRepository interface {
	CountBySessionAndClassroom(ctx context.Context, sessionID uint, classroom string) (int, error)
}

// Capacity answers quota and occupancy questions for (session, classroom)
// pairs. Quotas come from configuration; occupancy is always derived from
// participant assignments, never stored.
type Capacity struct {
	participants CapacityParticipantRepository
	plan         func() domain.ClassroomPlan
}

// NewCapacity builds the oracle. plan is called per lookup so configuration
// reloads take effect immediately.
func NewCapacity(participants CapacityParticipantRepository, plan func() domain.ClassroomPlan) *Capacity {
	return &Capacity{
		participants: participants,
		plan:         plan,
	}
}

// Quota returns the configured seat quota for a classroom (default 30).
func (c *Capacity) Quota(classroom string) int {
	return c.plan().QuotaFor(classroom)
}

// Occupancy returns the current participant count of a (session, classroom)
// pair, using the max-of-per-day-counts convention of the underlying store.
func (c *Capacity) Occupancy(ctx context.Context, sessionID uint, classroom string) (int, error) {
	count, err := c.participants.CountBySessionAndClassroom(ctx, sessionID, classroom)
	if err != nil {
		return 0, fmt.Errorf("c.participants.CountBySessionAndClassroom -> %w", err)
	}

	return count, nil
}

// Available returns quota minus occupancy. The result can be negative when
// over-capacity data pre-exists; callers must treat negative as zero
// availability and never book into it.
func (c *Capacity) Available(ctx context.Context, sessionID uint, classroom string) (int, error) {
	occupancy, err := c.Occupancy(ctx, sessionID, classroom)
	if err != nil {
		return 0, err
	}

	return c.Quota(classroom) - occupancy, nil
}

// Snapshot captures the full capacity picture of a (session, classroom) pair.
func (c *Capacity) Snapshot(ctx context.Context, sessionID uint, classroom string) (domain.CapacitySnapshot, error) {
	occupancy, err := c.Occupancy(ctx, sessionID, classroom)
	if err != nil {
		return domain.CapacitySnapshot{}, err
	}

	quota := c.Quota(classroom)

	var filled float64
	if quota > 0 {
		filled = float64(occupancy) / float64(quota) * 100
	}

	return domain.CapacitySnapshot{
		Total:            quota,
		Used:             occupancy,
		Available:        quota - occupancy,
		PercentageFilled: filled,
	}, nil
}

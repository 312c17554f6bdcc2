package repository

import (
	"context"
	"fmt"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/pkg/timeslot"
	"github.com/jaribu/attendance-api/internal/repository/dao"
)

var ErrSessionNotFound = dao.ErrSessionNotFound

type SessionDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Session, error)
	FindByDayAndSlot(ctx context.Context, day, timeSlot string) (dao.Session, error)
	ListByDay(ctx context.Context, day string) ([]dao.Session, error)
	EnsureForDay(ctx context.Context, day string, slots []string) error
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func sessionDaoToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:       s.ID,
		Day:      s.Day,
		TimeSlot: s.TimeSlot,
	}
}

func (r *SessionRepository) FindByID(ctx context.Context, id uint) (domain.Session, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	return sessionDaoToDomain(found), nil
}

// Resolve looks up a session by day and time-slot text. The slot is
// normalized before the lookup, so any spacing variant of the same slot
// resolves to the same session.
func (r *SessionRepository) Resolve(ctx context.Context, day, slot string) (domain.Session, error) {
	found, err := r.dao.FindByDayAndSlot(ctx, day, timeslot.Normalize(slot))
	if err != nil {
		return domain.Session{}, err
	}

	return sessionDaoToDomain(found), nil
}

func (r *SessionRepository) ListByDay(ctx context.Context, day string) ([]domain.Session, error) {
	found, err := r.dao.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByDay -> %w", err)
	}

	sessions := make([]domain.Session, len(found))
	for i, s := range found {
		sessions[i] = sessionDaoToDomain(s)
	}

	return sessions, nil
}

// EnsureForDay seeds the configured slots for a day, normalizing each one.
func (r *SessionRepository) EnsureForDay(ctx context.Context, day string, slots []string) error {
	normalized := make([]string, 0, len(slots))
	for _, slot := range slots {
		if n := timeslot.Normalize(slot); n != "" {
			normalized = append(normalized, n)
		}
	}

	return r.dao.EnsureForDay(ctx, day, normalized)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/pkg/timeslot"
	"github.com/jaribu/attendance-api/internal/repository"
)

var (
	ErrSessionNotFound      = repository.ErrSessionNotFound
	ErrNoSessionsConfigured = errors.New("no sessions configured for this day")
)

type SessionDirectoryRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Session, error)
	Resolve(ctx context.Context, day, slot string) (domain.Session, error)
	ListByDay(ctx context.Context, day string) ([]domain.Session, error)
	EnsureForDay(ctx context.Context, day string, slots []string) error
}

// SessionService is the session directory plus the availability and
// default-assignment logic built on top of the capacity oracle.
type SessionService struct {
	sessions SessionDirectoryRepository
	capacity *Capacity
	plan     func() domain.ClassroomPlan
}

func NewSessionService(sessions SessionDirectoryRepository, capacity *Capacity, plan func() domain.ClassroomPlan) *SessionService {
	return &SessionService{
		sessions: sessions,
		capacity: capacity,
		plan:     plan,
	}
}

// Bootstrap seeds the session universe from the configured slot lists. The
// universe is fixed by configuration; participant actions never create
// sessions.
func (s *SessionService) Bootstrap(ctx context.Context, saturdaySlots, sundaySlots []string) error {
	if err := s.sessions.EnsureForDay(ctx, domain.DaySaturday, saturdaySlots); err != nil {
		return fmt.Errorf("s.sessions.EnsureForDay(Saturday) -> %w", err)
	}
	if err := s.sessions.EnsureForDay(ctx, domain.DaySunday, sundaySlots); err != nil {
		return fmt.Errorf("s.sessions.EnsureForDay(Sunday) -> %w", err)
	}

	return nil
}

func (s *SessionService) Resolve(ctx context.Context, day, slot string) (domain.Session, error) {
	return s.sessions.Resolve(ctx, day, slot)
}

func (s *SessionService) FindByID(ctx context.Context, id uint) (domain.Session, error) {
	return s.sessions.FindByID(ctx, id)
}

// GetAvailableSessions lists a day's sessions with a capacity snapshot for
// the classroom the participant would sit in.
func (s *SessionService) GetAvailableSessions(ctx context.Context, day string, hasLaptop bool) ([]domain.SessionAvailability, error) {
	if !domain.IsValidDay(day) {
		return nil, ErrInvalidDayType
	}

	sessions, err := s.sessions.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("s.sessions.ListByDay -> %w", err)
	}

	classroom := s.plan().RoomFor(hasLaptop)

	availability := make([]domain.SessionAvailability, len(sessions))
	for i, session := range sessions {
		snapshot, err := s.capacity.Snapshot(ctx, session.ID, classroom)
		if err != nil {
			return nil, err
		}

		availability[i] = domain.SessionAvailability{
			Session:     session,
			Capacity:    snapshot,
			HasCapacity: snapshot.Available > 0,
		}
	}

	return availability, nil
}

// CurrentOrUpcoming resolves which session a scanner should target at the
// given clock time: the session whose slot contains the time, otherwise the
// first later one, otherwise the first session of the day. The clock is an
// explicit argument so callers stay deterministic under test. Sessions with
// malformed slot text are logged and skipped. The second return is false
// when the day has no usable sessions.
func (s *SessionService) CurrentOrUpcoming(ctx context.Context, day string, clock time.Time) (domain.Session, bool, error) {
	sessions, err := s.sessions.ListByDay(ctx, day)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("s.sessions.ListByDay -> %w", err)
	}
	if len(sessions) == 0 {
		return domain.Session{}, false, nil
	}

	now := clock.Hour()*60 + clock.Minute()

	var upcoming *domain.Session
	for i, session := range sessions {
		slot, err := timeslot.Parse(session.TimeSlot)
		if err != nil {
			zap.L().Warn("skipping session with malformed time slot",
				zap.Uint("session_id", session.ID),
				zap.String("time_slot", session.TimeSlot),
				zap.Error(err))
			continue
		}

		if slot.Contains(now) {
			return session, true, nil
		}

		if slot.Start > now && upcoming == nil {
			upcoming = &sessions[i]
		}
	}

	if upcoming != nil {
		return *upcoming, true, nil
	}

	return sessions[0], true, nil
}

// PickDefaultSession returns the day's least-loaded session: the one with
// the strictly largest summed availability across both classrooms, first of
// ties in listing order. Returns false when the day has no sessions. Used by
// bulk reset and default assignment only; interactive reassignment always
// takes an explicit participant choice.
func (s *SessionService) PickDefaultSession(ctx context.Context, day string) (domain.Session, bool, error) {
	sessions, err := s.sessions.ListByDay(ctx, day)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("s.sessions.ListByDay -> %w", err)
	}
	if len(sessions) == 0 {
		return domain.Session{}, false, nil
	}

	plan := s.plan()

	var best domain.Session
	mostAvailable := -1 << 31

	for _, session := range sessions {
		laptopAvailable, err := s.capacity.Available(ctx, session.ID, plan.LaptopRoom)
		if err != nil {
			return domain.Session{}, false, err
		}

		noLaptopAvailable, err := s.capacity.Available(ctx, session.ID, plan.NoLaptopRoom)
		if err != nil {
			return domain.Session{}, false, err
		}

		if total := laptopAvailable + noLaptopAvailable; total > mostAvailable {
			mostAvailable = total
			best = session
		}
	}

	return best, true, nil
}

package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	ID       uint   `gorm:"primaryKey"`
	Day      string `gorm:"not null;uniqueIndex:uq_sessions_day_slot"` // "Saturday" or "Sunday"
	TimeSlot string `gorm:"not null;uniqueIndex:uq_sessions_day_slot"` // normalized form
}

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{
		db: db,
	}
}

func (d *SessionDAO) FindByID(ctx context.Context, id uint) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

// FindByDayAndSlot looks a session up by its canonical key. The slot must
// already be normalized.
func (d *SessionDAO) FindByDayAndSlot(ctx context.Context, day, timeSlot string) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).
		Where("day = ? AND time_slot = ?", day, timeSlot).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

// ListByDay returns the day's sessions ordered by time slot ascending. The
// ordering is lexicographic on the normalized slot string, which is only
// chronological within a single am/pm block; it is used for display, never
// for capacity decisions.
func (d *SessionDAO) ListByDay(ctx context.Context, day string) ([]Session, error) {
	var sessions []Session

	result := d.db.WithContext(ctx).
		Where("day = ?", day).
		Order("time_slot ASC").
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

// EnsureForDay inserts any of the given normalized slots that do not exist
// yet for the day. Existing rows are left untouched; the session universe is
// fixed by configuration, never created by participant actions.
func (d *SessionDAO) EnsureForDay(ctx context.Context, day string, slots []string) error {
	if len(slots) == 0 {
		return nil
	}

	sessions := make([]Session, 0, len(slots))
	for _, slot := range slots {
		sessions = append(sessions, Session{Day: day, TimeSlot: slot})
	}

	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sessions)

	return result.Error
}

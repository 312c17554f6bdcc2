package repository

import (
	"context"
	"fmt"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/repository/dao"
)

type AttendanceDAO interface {
	Insert(ctx context.Context, attendance dao.Attendance) (dao.Attendance, error)
	ListByParticipant(ctx context.Context, participantID uint) ([]dao.Attendance, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) Record(ctx context.Context, attendance domain.Attendance) (domain.Attendance, error) {
	created, err := r.dao.Insert(ctx, dao.Attendance{
		ParticipantID:    attendance.ParticipantID,
		SessionID:        attendance.SessionID,
		Timestamp:        attendance.Timestamp,
		IsCorrectSession: attendance.IsCorrectSession,
		CheckInMethod:    attendance.CheckInMethod,
	})
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Attendance{
		ID:               created.ID,
		ParticipantID:    created.ParticipantID,
		SessionID:        created.SessionID,
		Timestamp:        created.Timestamp,
		IsCorrectSession: created.IsCorrectSession,
		CheckInMethod:    created.CheckInMethod,
	}, nil
}

func (r *AttendanceRepository) HistoryByParticipant(ctx context.Context, participantID uint) ([]domain.AttendanceHistoryEntry, error) {
	records, err := r.dao.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByParticipant -> %w", err)
	}

	history := make([]domain.AttendanceHistoryEntry, len(records))
	for i, record := range records {
		history[i] = domain.AttendanceHistoryEntry{
			Timestamp:      record.Timestamp,
			SessionDay:     record.Session.Day,
			SessionSlot:    record.Session.TimeSlot,
			CorrectSession: record.IsCorrectSession,
		}
	}

	return history, nil
}

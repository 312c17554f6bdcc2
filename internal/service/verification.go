package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/repository"
)

var ErrParticipantNotFound = repository.ErrParticipantNotFound

type VerifierParticipantRepository interface {
	FindByUniqueID(ctx context.Context, uniqueID string) (domain.Participant, error)
}

type VerifierSessionRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Session, error)
	Resolve(ctx context.Context, day, slot string) (domain.Session, error)
}

type AttendanceRecorder interface {
	Record(ctx context.Context, attendance domain.Attendance) (domain.Attendance, error)
	HistoryByParticipant(ctx context.Context, participantID uint) ([]domain.AttendanceHistoryEntry, error)
}

// VerificationService decides whether a scanned participant is in their
// assigned session and appends the attendance evidence either way.
type VerificationService struct {
	participants VerifierParticipantRepository
	sessions     VerifierSessionRepository
	attendance   AttendanceRecorder
}

func NewVerificationService(participants VerifierParticipantRepository, sessions VerifierSessionRepository, attendance AttendanceRecorder) *VerificationService {
	return &VerificationService{
		participants: participants,
		sessions:     sessions,
		attendance:   attendance,
	}
}

// CourseDay maps a wall-clock time to the course day used for verification.
// Outside the weekend the system runs in simulation mode and behaves as a
// Saturday.
func CourseDay(now time.Time) string {
	switch now.Weekday() {
	case time.Saturday:
		return domain.DaySaturday
	case time.Sunday:
		return domain.DaySunday
	default:
		zap.L().Warn("attendance verification outside the weekend, defaulting to Saturday",
			zap.String("weekday", now.Weekday().String()))
		return domain.DaySaturday
	}
}

// VerifyAttendance resolves the participant and the scanned session, compares
// the scan against the participant's expected session for the day, and writes
// one attendance row. The row is written for mismatches too; only resolution
// failures short-circuit without a write. now is an explicit input so tests
// control the day.
func (s *VerificationService) VerifyAttendance(ctx context.Context, uniqueID, slotText string, now time.Time) (domain.VerificationResult, error) {
	day := CourseDay(now)

	participant, err := s.participants.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		return domain.VerificationResult{}, err
	}

	scanned, err := s.sessions.Resolve(ctx, day, slotText)
	if err != nil {
		return domain.VerificationResult{}, err
	}

	expectedID := participant.SessionIDFor(day)
	isCorrect := scanned.ID == expectedID

	if _, err = s.attendance.Record(ctx, domain.Attendance{
		ParticipantID:    participant.ID,
		SessionID:        scanned.ID,
		Timestamp:        now,
		IsCorrectSession: isCorrect,
		CheckInMethod:    domain.CheckInQRCode,
	}); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("s.attendance.Record -> %w", err)
	}

	result := domain.VerificationResult{
		Participant:        participant,
		ScannedSession:     scanned,
		AttendanceRecorded: true,
		Timestamp:          now,
	}

	if isCorrect {
		result.Status = domain.StatusCorrectSession
		result.Message = "Attendance verified. Participant is in the correct session."

		return result, nil
	}

	result.Status = domain.StatusWrongSession
	result.Message = "Participant is in the wrong session."

	if expected, err := s.sessions.FindByID(ctx, expectedID); err == nil {
		result.CorrectSession = &expected
	} else {
		zap.L().Warn("expected session could not be resolved for redirect info",
			zap.Uint("session_id", expectedID),
			zap.Error(err))
	}

	return result, nil
}

// History returns a participant's attendance log, newest first.
func (s *VerificationService) History(ctx context.Context, uniqueID string) (domain.Participant, []domain.AttendanceHistoryEntry, error) {
	participant, err := s.participants.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		return domain.Participant{}, nil, err
	}

	history, err := s.attendance.HistoryByParticipant(ctx, participant.ID)
	if err != nil {
		return domain.Participant{}, nil, fmt.Errorf("s.attendance.HistoryByParticipant -> %w", err)
	}

	return participant, history, nil
}

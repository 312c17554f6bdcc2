package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/repository"
)

var ErrParticipantExists = repository.ErrParticipantExists

type ParticipantStore interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByUniqueID(ctx context.Context, uniqueID string) (domain.Participant, error)
	UniqueIDExists(ctx context.Context, uniqueID string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Participant, error)
	UpdateSessionForDay(ctx context.Context, participantID uint, day string, sessionID uint) error
	UpdateQRCodePath(ctx context.Context, participantID uint, path string) error
}

// QRGenerator renders a participant badge and returns the stored image path.
type QRGenerator interface {
	Generate(uniqueID string) (string, error)
}

// NewParticipant is the admin-supplied part of a participant record;
// everything else (unique id, classroom, default sessions, QR badge) is
// derived on creation.
type NewParticipant struct {
	Email      string
	Surname    string
	FirstName  string
	SecondName string
	Phone      string
	HasLaptop  bool
}

// ParticipantService owns participant creation and the bulk default
// assignment used by admin resets.
type ParticipantService struct {
	participants ParticipantStore
	sessions     *SessionService
	plan         func() domain.ClassroomPlan
	qr           QRGenerator
}

func NewParticipantService(participants ParticipantStore, sessions *SessionService, plan func() domain.ClassroomPlan, qr QRGenerator) *ParticipantService {
	return &ParticipantService{
		participants: participants,
		sessions:     sessions,
		plan:         plan,
		qr:           qr,
	}
}

// Create registers a participant: picks a free 5-digit id, derives the
// classroom from the laptop flag, assigns the least-loaded session of each
// day, and renders the QR badge. The badge is best effort; a rendering
// failure logs a warning and leaves the path empty.
func (s *ParticipantService) Create(ctx context.Context, input NewParticipant) (domain.Participant, error) {
	uniqueID, err := s.generateUniqueID(ctx)
	if err != nil {
		return domain.Participant{}, err
	}

	saturday, ok, err := s.sessions.PickDefaultSession(ctx, domain.DaySaturday)
	if err != nil {
		return domain.Participant{}, err
	}
	if !ok {
		return domain.Participant{}, ErrNoSessionsConfigured
	}

	sunday, ok, err := s.sessions.PickDefaultSession(ctx, domain.DaySunday)
	if err != nil {
		return domain.Participant{}, err
	}
	if !ok {
		return domain.Participant{}, ErrNoSessionsConfigured
	}

	created, err := s.participants.Create(ctx, domain.Participant{
		UniqueID:          uniqueID,
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		Surname:           input.Surname,
		FirstName:         input.FirstName,
		SecondName:        input.SecondName,
		Phone:             input.Phone,
		HasLaptop:         input.HasLaptop,
		Classroom:         s.plan().RoomFor(input.HasLaptop),
		SaturdaySessionID: saturday.ID,
		SundaySessionID:   sunday.ID,
	})
	if err != nil {
		return domain.Participant{}, err
	}

	if s.qr != nil {
		path, err := s.qr.Generate(created.UniqueID)
		if err != nil {
			zap.L().Warn("QR badge generation failed",
				zap.String("unique_id", created.UniqueID),
				zap.Error(err))
		} else if err = s.participants.UpdateQRCodePath(ctx, created.ID, path); err != nil {
			zap.L().Warn("storing QR badge path failed",
				zap.String("unique_id", created.UniqueID),
				zap.Error(err))
		} else {
			created.QRCodePath = path
		}
	}

	return created, nil
}

func (s *ParticipantService) GetByUniqueID(ctx context.Context, uniqueID string) (domain.Participant, error) {
	return s.participants.FindByUniqueID(ctx, uniqueID)
}

// ResetSessions reassigns every participant's session for one day to the
// least-loaded session, re-picking after each move so the load stays
// balanced. Returns how many participants were moved.
func (s *ParticipantService) ResetSessions(ctx context.Context, day string) (int, error) {
	if !domain.IsValidDay(day) {
		return 0, ErrInvalidDayType
	}

	participants, err := s.participants.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, participant := range participants {
		target, ok, err := s.sessions.PickDefaultSession(ctx, day)
		if err != nil {
			return moved, err
		}
		if !ok {
			return moved, ErrNoSessionsConfigured
		}

		if participant.SessionIDFor(day) == target.ID {
			continue
		}

		if err = s.participants.UpdateSessionForDay(ctx, participant.ID, day, target.ID); err != nil {
			return moved, fmt.Errorf("s.participants.UpdateSessionForDay -> %w", err)
		}
		moved++
	}

	return moved, nil
}

// generateUniqueID draws random 5-digit ids until one is free. The format is
// load-bearing: printed QR badges and the check-in scanner expect exactly
// five digits.
func (s *ParticipantService) generateUniqueID(ctx context.Context) (string, error) {
	for {
		candidate := fmt.Sprintf("%05d", rand.Intn(100000))

		exists, err := s.participants.UniqueIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("s.participants.UniqueIDExists -> %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

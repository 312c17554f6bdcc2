package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/repository"
)

var (
	ErrInvalidDayType = errors.New("invalid day type, must be Saturday or Sunday")
	ErrDayMismatch    = errors.New("requested session is not on the requested day")
	ErrNoOpRequest    = errors.New("cannot request reassignment to the current session")

	ErrRequestNotFound     = repository.ErrRequestNotFound
	ErrAlreadyProcessed    = repository.ErrAlreadyProcessed
	ErrDuplicatePending    = repository.ErrDuplicatePending
	ErrCapacityExceeded    = repository.ErrCapacityExceeded
	ErrReassignmentsCapped = repository.ErrReassignmentsCapped
)

type ArbitratorParticipantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
}

type ReassignmentRequestRepository interface {
	FindByID(ctx context.Context, id uint) (domain.ReassignmentRequest, error)
	ListByParticipant(ctx context.Context, participantID uint) ([]domain.RequestSummary, error)
	ListPending(ctx context.Context) ([]domain.RequestSummary, error)
	HasPending(ctx context.Context, participantID uint, dayType string) (bool, error)
	Create(ctx context.Context, request domain.ReassignmentRequest, plan domain.ClassroomPlan) (domain.ReassignmentRequest, error)
	Approve(ctx context.Context, requestID, reviewerID uint, notes string, plan domain.ClassroomPlan) (domain.ReassignmentRequest, error)
	Reject(ctx context.Context, requestID, reviewerID uint, notes string) (domain.ReassignmentRequest, error)
}

// Notifier delivers best-effort messages about reassignment outcomes.
// Failures must never affect the decision that already committed.
type Notifier interface {
	Send(to, subject, body string) error
}

// ReassignmentService arbitrates session changes: it validates requests
// against the capacity and reassignment-count invariants and drives the
// pending -> approved/rejected lifecycle.
type ReassignmentService struct {
	participants ArbitratorParticipantRepository
	sessions     SessionDirectoryRepository
	requests     ReassignmentRequestRepository
	capacity     *Capacity
	plan         func() domain.ClassroomPlan
	notifier     Notifier
}

func NewReassignmentService(
	participants ArbitratorParticipantRepository,
	sessions SessionDirectoryRepository,
	requests ReassignmentRequestRepository,
	capacity *Capacity,
	plan func() domain.ClassroomPlan,
	notifier Notifier,
) *ReassignmentService {
	return &ReassignmentService{
		participants: participants,
		sessions:     sessions,
		requests:     requests,
		capacity:     capacity,
		plan:         plan,
		notifier:     notifier,
	}
}

// CreateRequest validates and files a reassignment request. Validation order
// matters for the error a caller sees: participant, reassignment cap, day
// type, session existence and day, no-op, capacity, duplicate pending. The
// capacity check here gives early rejection; the repository re-checks it
// (and the duplicate) inside the insert transaction since either can shift
// between read and write.
func (s *ReassignmentService) CreateRequest(ctx context.Context, participantID uint, dayType string, requestedSessionID uint, reason string) (domain.ReassignmentRequest, error) {
	participant, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	if participant.ReassignmentsCount >= domain.MaxReassignments {
		return domain.ReassignmentRequest{}, ErrReassignmentsCapped
	}

	if !domain.IsValidDay(dayType) {
		return domain.ReassignmentRequest{}, ErrInvalidDayType
	}

	requested, err := s.sessions.FindByID(ctx, requestedSessionID)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}
	if requested.Day != dayType {
		return domain.ReassignmentRequest{}, ErrDayMismatch
	}

	currentSessionID := participant.SessionIDFor(dayType)
	if currentSessionID == requestedSessionID {
		return domain.ReassignmentRequest{}, ErrNoOpRequest
	}

	occupancy, err := s.capacity.Occupancy(ctx, requestedSessionID, participant.Classroom)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}
	if occupancy >= s.capacity.Quota(participant.Classroom) {
		return domain.ReassignmentRequest{}, ErrCapacityExceeded
	}

	hasPending, err := s.requests.HasPending(ctx, participantID, dayType)
	if err != nil {
		return domain.ReassignmentRequest{}, fmt.Errorf("s.requests.HasPending -> %w", err)
	}
	if hasPending {
		return domain.ReassignmentRequest{}, ErrDuplicatePending
	}

	created, err := s.requests.Create(ctx, domain.ReassignmentRequest{
		ParticipantID:      participantID,
		CurrentSessionID:   currentSessionID,
		RequestedSessionID: requestedSessionID,
		DayType:            dayType,
		Reason:             reason,
	}, s.plan())
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	s.notify(participant, "Reassignment request received",
		fmt.Sprintf("Your request to move your %s session to %s is pending review.", dayType, requested.TimeSlot))

	return created, nil
}

// ListParticipantRequests returns a participant's requests, newest first.
func (s *ReassignmentService) ListParticipantRequests(ctx context.Context, participantID uint) ([]domain.RequestSummary, error) {
	if _, err := s.participants.FindByID(ctx, participantID); err != nil {
		return nil, err
	}

	return s.requests.ListByParticipant(ctx, participantID)
}

// ListPendingRequests is the admin review queue, oldest first, with
// participant detail attached.
func (s *ReassignmentService) ListPendingRequests(ctx context.Context) ([]domain.RequestSummary, error) {
	return s.requests.ListPending(ctx)
}

// Process approves or rejects a pending request. Approval re-validates
// capacity inside the repository transaction; when the seat is gone the
// request stays pending and the caller sees ErrCapacityExceeded, so staff
// can retry later or reject with a note.
func (s *ReassignmentService) Process(ctx context.Context, requestID, reviewerID uint, approve bool, notes string) (domain.ReassignmentRequest, error) {
	var (
		processed domain.ReassignmentRequest
		err       error
	)

	if approve {
		processed, err = s.requests.Approve(ctx, requestID, reviewerID, notes, s.plan())
	} else {
		processed, err = s.requests.Reject(ctx, requestID, reviewerID, notes)
	}
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	if participant, pErr := s.participants.FindByID(ctx, processed.ParticipantID); pErr == nil {
		verdict := "approved"
		if !approve {
			verdict = "rejected"
		}
		s.notify(participant, "Reassignment request "+verdict,
			fmt.Sprintf("Your %s reassignment request has been %s.", processed.DayType, verdict))
	}

	return processed, nil
}

// notify sends fire-and-forget. The decision already committed; a delivery
// failure is logged and nothing else.
func (s *ReassignmentService) notify(participant domain.Participant, subject, body string) {
	if s.notifier == nil {
		return
	}

	go func() {
		if err := s.notifier.Send(participant.Email, subject, body); err != nil {
			zap.L().Warn("reassignment notification failed",
				zap.String("email", participant.Email),
				zap.Error(err))
		}
	}()
}

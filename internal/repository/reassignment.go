package repository

import (
	"context"
	"fmt"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/repository/dao"
)

var (
	ErrRequestNotFound     = dao.ErrRequestNotFound
	ErrAlreadyProcessed    = dao.ErrAlreadyProcessed
	ErrDuplicatePending    = dao.ErrDuplicatePending
	ErrCapacityExceeded    = dao.ErrCapacityExceeded
	ErrReassignmentsCapped = dao.ErrReassignmentsCapped
)

type ReassignmentDAO interface {
	FindByID(ctx context.Context, id uint) (dao.ReassignmentRequest, error)
	ListByParticipant(ctx context.Context, participantID uint) ([]dao.ReassignmentRequest, error)
	ListPending(ctx context.Context) ([]dao.ReassignmentRequest, error)
	HasPending(ctx context.Context, participantID uint, dayType string) (bool, error)
	Insert(ctx context.Context, request dao.ReassignmentRequest, quotaFor func(classroom string) int) (dao.ReassignmentRequest, error)
	Approve(ctx context.Context, requestID, reviewerID uint, notes string, quotaFor func(classroom string) int) (dao.ReassignmentRequest, error)
	Reject(ctx context.Context, requestID, reviewerID uint, notes string) (dao.ReassignmentRequest, error)
}

type ReassignmentRepository struct {
	dao ReassignmentDAO
}

func NewReassignmentRepository(dao ReassignmentDAO) *ReassignmentRepository {
	return &ReassignmentRepository{
		dao: dao,
	}
}

func requestDaoToDomain(r dao.ReassignmentRequest) domain.ReassignmentRequest {
	return domain.ReassignmentRequest{
		ID:                 r.ID,
		ParticipantID:      r.ParticipantID,
		CurrentSessionID:   r.CurrentSessionID,
		RequestedSessionID: r.RequestedSessionID,
		DayType:            r.DayType,
		Reason:             r.Reason,
		Status:             r.Status,
		AdminNotes:         r.AdminNotes,
		ReviewedBy:         r.ReviewedBy,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		ReviewedAt:         r.ReviewedAt,
	}
}

func requestDaoToSummary(r dao.ReassignmentRequest, includeParticipant bool) domain.RequestSummary {
	summary := domain.RequestSummary{
		ID:               r.ID,
		DayType:          r.DayType,
		CurrentSession:   r.CurrentSession.TimeSlot,
		RequestedSession: r.RequestedSession.TimeSlot,
		Reason:           r.Reason,
		Status:           r.Status,
		AdminNotes:       r.AdminNotes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	if includeParticipant {
		participant := participantDaoToDomain(r.Participant)
		summary.Participant = &participant
	}

	return summary
}

func (r *ReassignmentRepository) FindByID(ctx context.Context, id uint) (domain.ReassignmentRequest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	return requestDaoToDomain(found), nil
}

func (r *ReassignmentRepository) ListByParticipant(ctx context.Context, participantID uint) ([]domain.RequestSummary, error) {
	found, err := r.dao.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByParticipant -> %w", err)
	}

	summaries := make([]domain.RequestSummary, len(found))
	for i, request := range found {
		summaries[i] = requestDaoToSummary(request, false)
	}

	return summaries, nil
}

func (r *ReassignmentRepository) ListPending(ctx context.Context) ([]domain.RequestSummary, error) {
	found, err := r.dao.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPending -> %w", err)
	}

	summaries := make([]domain.RequestSummary, len(found))
	for i, request := range found {
		summaries[i] = requestDaoToSummary(request, true)
	}

	return summaries, nil
}

func (r *ReassignmentRepository) HasPending(ctx context.Context, participantID uint, dayType string) (bool, error) {
	return r.dao.HasPending(ctx, participantID, dayType)
}

func (r *ReassignmentRepository) Create(ctx context.Context, request domain.ReassignmentRequest, plan domain.ClassroomPlan) (domain.ReassignmentRequest, error) {
	created, err := r.dao.Insert(ctx, dao.ReassignmentRequest{
		ParticipantID:      request.ParticipantID,
		CurrentSessionID:   request.CurrentSessionID,
		RequestedSessionID: request.RequestedSessionID,
		DayType:            request.DayType,
		Reason:             request.Reason,
	}, plan.QuotaFor)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	return requestDaoToDomain(created), nil
}

func (r *ReassignmentRepository) Approve(ctx context.Context, requestID, reviewerID uint, notes string, plan domain.ClassroomPlan) (domain.ReassignmentRequest, error) {
	approved, err := r.dao.Approve(ctx, requestID, reviewerID, notes, plan.QuotaFor)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	return requestDaoToDomain(approved), nil
}

func (r *ReassignmentRepository) Reject(ctx context.Context, requestID, reviewerID uint, notes string) (domain.ReassignmentRequest, error) {
	rejected, err := r.dao.Reject(ctx, requestID, reviewerID, notes)
	if err != nil {
		return domain.ReassignmentRequest{}, err
	}

	return requestDaoToDomain(rejected), nil
}

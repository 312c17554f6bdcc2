package repository

import (
	"context"
	"fmt"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/repository/dao"
)

var (
	ErrParticipantExists   = dao.ErrParticipantExists
	ErrParticipantNotFound = dao.ErrParticipantNotFound
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
	FindByUniqueID(ctx context.Context, uniqueID string) (dao.Participant, error)
	UniqueIDExists(ctx context.Context, uniqueID string) (bool, error)
	CountBySessionAndClassroom(ctx context.Context, sessionID uint, classroom string) (int, error)
	ListAll(ctx context.Context) ([]dao.Participant, error)
	UpdateSessionForDay(ctx context.Context, participantID uint, day string, sessionID uint) error
	UpdateQRCodePath(ctx context.Context, participantID uint, path string) error
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func participantDomainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:                    p.ID,
		UniqueID:              p.UniqueID,
		Email:                 p.Email,
		Surname:               p.Surname,
		FirstName:             p.FirstName,
		SecondName:            p.SecondName,
		Phone:                 p.Phone,
		HasLaptop:             p.HasLaptop,
		Classroom:             p.Classroom,
		SaturdaySessionID:     p.SaturdaySessionID,
		SundaySessionID:       p.SundaySessionID,
		ReassignmentsCount:    p.ReassignmentsCount,
		QRCodePath:            p.QRCodePath,
		RegistrationTimestamp: p.RegistrationTimestamp,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                    p.ID,
		UniqueID:              p.UniqueID,
		Email:                 p.Email,
		Surname:               p.Surname,
		FirstName:             p.FirstName,
		SecondName:            p.SecondName,
		Phone:                 p.Phone,
		HasLaptop:             p.HasLaptop,
		Classroom:             p.Classroom,
		SaturdaySessionID:     p.SaturdaySessionID,
		SundaySessionID:       p.SundaySessionID,
		ReassignmentsCount:    p.ReassignmentsCount,
		QRCodePath:            p.QRCodePath,
		RegistrationTimestamp: p.RegistrationTimestamp,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, participantDomainToDao(participant))
	if err != nil {
		return domain.Participant{}, err
	}

	return participantDaoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, err
	}

	return participantDaoToDomain(found), nil
}

func (r *ParticipantRepository) FindByUniqueID(ctx context.Context, uniqueID string) (domain.Participant, error) {
	found, err := r.dao.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		return domain.Participant{}, err
	}

	return participantDaoToDomain(found), nil
}

func (r *ParticipantRepository) UniqueIDExists(ctx context.Context, uniqueID string) (bool, error) {
	return r.dao.UniqueIDExists(ctx, uniqueID)
}

// CountBySessionAndClassroom is the occupancy read used by the capacity
// oracle outside transactions.
func (r *ParticipantRepository) CountBySessionAndClassroom(ctx context.Context, sessionID uint, classroom string) (int, error) {
	count, err := r.dao.CountBySessionAndClassroom(ctx, sessionID, classroom)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountBySessionAndClassroom -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) ListAll(ctx context.Context) ([]domain.Participant, error) {
	found, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = participantDaoToDomain(p)
	}

	return participants, nil
}

func (r *ParticipantRepository) UpdateSessionForDay(ctx context.Context, participantID uint, day string, sessionID uint) error {
	return r.dao.UpdateSessionForDay(ctx, participantID, day, sessionID)
}

func (r *ParticipantRepository) UpdateQRCodePath(ctx context.Context, participantID uint, path string) error {
	return r.dao.UpdateQRCodePath(ctx, participantID, path)
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRequestNotFound     = errors.New("reassignment request not found")
	ErrAlreadyProcessed    = errors.New("reassignment request already processed")
	ErrDuplicatePending    = errors.New("pending reassignment request already exists for this day")
	ErrCapacityExceeded    = errors.New("requested session has no available capacity")
	ErrReassignmentsCapped = errors.New("maximum number of reassignments reached")
)

type ReassignmentRequest struct {
	ID uint `gorm:"primaryKey"`

	ParticipantID uint        `gorm:"not null;index:idx_requests_participant_day_status"`
	Participant   Participant `gorm:"foreignKey:ParticipantID"`

	CurrentSessionID   uint    `gorm:"not null"`
	RequestedSessionID uint    `gorm:"not null"`
	CurrentSession     Session `gorm:"foreignKey:CurrentSessionID"`
	RequestedSession   Session `gorm:"foreignKey:RequestedSessionID"`

	DayType string `gorm:"size:10;not null;index:idx_requests_participant_day_status"`
	Reason  string `gorm:"type:text;not null"`

	Status     string `gorm:"size:10;default:pending;index:idx_requests_participant_day_status"`
	AdminNotes string `gorm:"type:text"`
	ReviewedBy uint

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ReviewedAt *time.Time
}

const maxReassignments = 2

type ReassignmentDAO struct {
	db *gorm.DB
}

func NewReassignmentDAO(db *gorm.DB) *ReassignmentDAO {
	return &ReassignmentDAO{
		db: db,
	}
}

func (d *ReassignmentDAO) FindByID(ctx context.Context, id uint) (ReassignmentRequest, error) {
	var request ReassignmentRequest

	result := d.db.WithContext(ctx).
		Preload("CurrentSession").
		Preload("RequestedSession").
		First(&request, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ReassignmentRequest{}, ErrRequestNotFound
		}

		return ReassignmentRequest{}, result.Error
	}

	return request, nil
}

func (d *ReassignmentDAO) ListByParticipant(ctx context.Context, participantID uint) ([]ReassignmentRequest, error) {
	var requests []ReassignmentRequest

	result := d.db.WithContext(ctx).
		Preload("CurrentSession").
		Preload("RequestedSession").
		Where("participant_id = ?", participantID).
		Order("created_at DESC").
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *ReassignmentDAO) ListPending(ctx context.Context) ([]ReassignmentRequest, error) {
	var requests []ReassignmentRequest

	result := d.db.WithContext(ctx).
		Preload("Participant").
		Preload("CurrentSession").
		Preload("RequestedSession").
		Where("status = ?", "pending").
		Order("created_at ASC").
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *ReassignmentDAO) HasPending(ctx context.Context, participantID uint, dayType string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&ReassignmentRequest{}).
		Where("participant_id = ? AND day_type = ? AND status = ?", participantID, dayType, "pending").
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Insert creates a pending request. The capacity and duplicate-pending checks
// run again inside the transaction, after locking the requested session row,
// so a racing request for the same seat cannot slip between the check and the
// insert.
func (d *ReassignmentDAO) Insert(ctx context.Context, request ReassignmentRequest, quotaFor func(classroom string) int) (ReassignmentRequest, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session Session
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, request.RequestedSessionID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}

			return result.Error
		}

		var participant Participant
		if result = tx.First(&participant, request.ParticipantID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrParticipantNotFound
			}

			return result.Error
		}

		occupancy, err := countBySessionAndClassroom(tx, request.RequestedSessionID, participant.Classroom)
		if err != nil {
			return err
		}
		if occupancy >= quotaFor(participant.Classroom) {
			return ErrCapacityExceeded
		}

		var pending int64
		result = tx.Model(&ReassignmentRequest{}).
			Where("participant_id = ? AND day_type = ? AND status = ?",
				request.ParticipantID, request.DayType, "pending").
			Count(&pending)
		if result.Error != nil {
			return result.Error
		}
		if pending > 0 {
			return ErrDuplicatePending
		}

		request.Status = "pending"

		return tx.Create(&request).Error
	})
	if err != nil {
		return ReassignmentRequest{}, err
	}

	return request, nil
}

// Approve applies an approval atomically: it locks the request, the
// participant, and the requested session row, re-counts occupancy under the
// lock, then repoints the participant's session for the day, increments the
// reassignment counter, and stamps the request. When the re-count finds the
// session full, the transaction rolls back and the request stays pending so
// staff can retry or reject it explicitly.
func (d *ReassignmentDAO) Approve(ctx context.Context, requestID, reviewerID uint, notes string, quotaFor func(classroom string) int) (ReassignmentRequest, error) {
	var request ReassignmentRequest

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, requestID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}

			return result.Error
		}

		if request.Status != "pending" {
			return ErrAlreadyProcessed
		}

		var participant Participant
		result = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&participant, request.ParticipantID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrParticipantNotFound
			}

			return result.Error
		}

		if participant.ReassignmentsCount >= maxReassignments {
			return ErrReassignmentsCapped
		}

		// Serialization point: racing approvals for the same session queue
		// on this row lock, so the occupancy count below is authoritative.
		var session Session
		result = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, request.RequestedSessionID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}

			return result.Error
		}

		occupancy, err := countBySessionAndClassroom(tx, request.RequestedSessionID, participant.Classroom)
		if err != nil {
			return err
		}
		if occupancy >= quotaFor(participant.Classroom) {
			return ErrCapacityExceeded
		}

		sessionColumn := "saturday_session_id"
		if request.DayType == "Sunday" {
			sessionColumn = "sunday_session_id"
		}

		result = tx.Model(&participant).Updates(map[string]interface{}{
			sessionColumn:         request.RequestedSessionID,
			"reassignments_count": gorm.Expr("reassignments_count + 1"),
		})
		if result.Error != nil {
			return result.Error
		}

		now := time.Now()
		request.Status = "approved"
		request.AdminNotes = notes
		request.ReviewedBy = reviewerID
		request.ReviewedAt = &now

		return tx.Save(&request).Error
	})
	if err != nil {
		return ReassignmentRequest{}, err
	}

	return request, nil
}

// Reject marks a pending request rejected. No other state changes.
func (d *ReassignmentDAO) Reject(ctx context.Context, requestID, reviewerID uint, notes string) (ReassignmentRequest, error) {
	var request ReassignmentRequest

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, requestID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}

			return result.Error
		}

		if request.Status != "pending" {
			return ErrAlreadyProcessed
		}

		now := time.Now()
		request.Status = "rejected"
		request.AdminNotes = notes
		request.ReviewedBy = reviewerID
		request.ReviewedAt = &now

		return tx.Save(&request).Error
	})
	if err != nil {
		return ReassignmentRequest{}, err
	}

	return request, nil
}

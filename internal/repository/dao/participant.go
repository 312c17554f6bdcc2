package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrParticipantExists   = errors.New("participant already exists")
	ErrParticipantNotFound = errors.New("participant not found")
)

type Participant struct {
	ID uint `gorm:"primaryKey"`

	UniqueID string `gorm:"uniqueIndex;size:5;not null"`
	Email    string `gorm:"uniqueIndex;not null"`

	Surname    string `gorm:"not null"`
	FirstName  string `gorm:"not null"`
	SecondName string

	Phone     string `gorm:"not null"`
	HasLaptop bool   `gorm:"default:false"`
	Classroom string `gorm:"size:10;not null;index"`

	SaturdaySessionID uint     `gorm:"index"`
	SundaySessionID   uint     `gorm:"index"`
	SaturdaySession   *Session `gorm:"foreignKey:SaturdaySessionID"`
	SundaySession     *Session `gorm:"foreignKey:SundaySessionID"`

	ReassignmentsCount int `gorm:"default:0;not null"`

	QRCodePath            string    `gorm:"column:qr_code_path"`
	RegistrationTimestamp time.Time `gorm:"autoCreateTime"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Participant{}, ErrParticipantExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByUniqueID(ctx context.Context, uniqueID string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).
		Preload("SaturdaySession").
		Preload("SundaySession").
		Where("unique_id = ?", uniqueID).
		First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) UniqueIDExists(ctx context.Context, uniqueID string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("unique_id = ?", uniqueID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// CountBySessionAndClassroom returns the occupancy of a (session, classroom)
// pair. Saturday and Sunday assignments share one session-id namespace, so
// the two per-day counts are taken separately and the max is returned rather
// than the sum; summing would double count a participant linked to the same
// session id on both days. A first-class (session, day, classroom) ledger
// would be cleaner, but this matches the data as it exists.
func (d *ParticipantDAO) CountBySessionAndClassroom(ctx context.Context, sessionID uint, classroom string) (int, error) {
	return countBySessionAndClassroom(d.db.WithContext(ctx), sessionID, classroom)
}

func countBySessionAndClassroom(tx *gorm.DB, sessionID uint, classroom string) (int, error) {
	var saturday, sunday int64

	result := tx.Model(&Participant{}).
		Where("saturday_session_id = ? AND classroom = ?", sessionID, classroom).
		Count(&saturday)
	if result.Error != nil {
		return 0, result.Error
	}

	result = tx.Model(&Participant{}).
		Where("sunday_session_id = ? AND classroom = ?", sessionID, classroom).
		Count(&sunday)
	if result.Error != nil {
		return 0, result.Error
	}

	if saturday > sunday {
		return int(saturday), nil
	}

	return int(sunday), nil
}

// ListAll returns every participant, ordered by registration.
func (d *ParticipantDAO) ListAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Order("registration_timestamp ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// UpdateSessionForDay repoints one participant's assignment for a day. Used
// by the bulk reset path only; reassignment approvals go through the
// transactional path in ReassignmentDAO.
func (d *ParticipantDAO) UpdateSessionForDay(ctx context.Context, participantID uint, day string, sessionID uint) error {
	column := "saturday_session_id"
	if day == "Sunday" {
		column = "sunday_session_id"
	}

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", participantID).
		Update(column, sessionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) UpdateQRCodePath(ctx context.Context, participantID uint, path string) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", participantID).
		Update("qr_code_path", path)

	return result.Error
}

package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Attendance struct {
	ID uint `gorm:"primaryKey"`

	ParticipantID uint        `gorm:"not null;index"`
	Participant   Participant `gorm:"foreignKey:ParticipantID"`

	SessionID uint    `gorm:"not null;index"`
	Session   Session `gorm:"foreignKey:SessionID"`

	Timestamp        time.Time `gorm:"not null;index"`
	IsCorrectSession bool      `gorm:"default:false"`
	CheckInMethod    string    `gorm:"size:20;default:qr_code"`
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

// Insert appends one attendance row. There is no idempotence guard: scanning
// the same participant at the same session twice writes two rows, each scan
// being its own event.
func (d *AttendanceDAO) Insert(ctx context.Context, attendance Attendance) (Attendance, error) {
	result := d.db.WithContext(ctx).Create(&attendance)
	if result.Error != nil {
		return Attendance{}, result.Error
	}

	return attendance, nil
}

func (d *AttendanceDAO) ListByParticipant(ctx context.Context, participantID uint) ([]Attendance, error) {
	var records []Attendance

	result := d.db.WithContext(ctx).
		Preload("Session").
		Where("participant_id = ?", participantID).
		Order("timestamp DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaribu/attendance-api/internal/domain"
)

func newParticipantTestStack(qr QRGenerator) (*fakeParticipantRepo, *fakeSessionRepo, *ParticipantService) {
	participants := newFakeParticipantRepo()
	sessions := newFakeSessionRepo()
	capacity := NewCapacity(participants, testPlan)
	sessionSvc := NewSessionService(sessions, capacity, testPlan)
	svc := NewParticipantService(participants, sessionSvc, testPlan, qr)

	return participants, sessions, svc
}

func TestParticipantService_Create(t *testing.T) {
	_, sessions, svc := newParticipantTestStack(&fakeQRGenerator{})

	sessions.add(domain.DaySaturday, "8:00am - 9:30am")
	sessions.add(domain.DaySunday, "8:00am - 9:30am")

	created, err := svc.Create(context.Background(), NewParticipant{
		Email:     "  Jane.Doe@Example.org ",
		Surname:   "Doe",
		FirstName: "Jane",
		Phone:     "0712345678",
		HasLaptop: true,
	})
	require.NoError(t, err)

	assert.Len(t, created.UniqueID, 5)
	assert.Equal(t, "jane.doe@example.org", created.Email)
	assert.Equal(t, "205", created.Classroom, "laptop holders go to the laptop room")
	assert.NotZero(t, created.SaturdaySessionID)
	assert.NotZero(t, created.SundaySessionID)
	assert.Equal(t, "/qrcodes/"+created.UniqueID+".png", created.QRCodePath)
}

func TestParticipantService_Create_NoLaptop(t *testing.T) {
	_, sessions, svc := newParticipantTestStack(&fakeQRGenerator{})

	sessions.add(domain.DaySaturday, "8:00am - 9:30am")
	sessions.add(domain.DaySunday, "8:00am - 9:30am")

	created, err := svc.Create(context.Background(), NewParticipant{
		Email:     "john@example.org",
		Surname:   "Mwangi",
		FirstName: "John",
		Phone:     "0787654321",
		HasLaptop: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "203", created.Classroom)
}

func TestParticipantService_Create_SpreadsLoad(t *testing.T) {
	participants, sessions, svc := newParticipantTestStack(nil)

	busy := sessions.add(domain.DaySaturday, "8:00am - 9:30am")
	free := sessions.add(domain.DaySaturday, "9:30am - 11:00am")
	sessions.add(domain.DaySunday, "8:00am - 9:30am")

	for i := 0; i < 5; i++ {
		participants.add(domain.Participant{Classroom: "203", SaturdaySessionID: busy.ID})
	}

	created, err := svc.Create(context.Background(), NewParticipant{
		Email:     "late@example.org",
		Surname:   "Comer",
		FirstName: "Late",
		Phone:     "0700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, free.ID, created.SaturdaySessionID)
}

func TestParticipantService_Create_QRFailureIsBestEffort(t *testing.T) {
	_, sessions, svc := newParticipantTestStack(&fakeQRGenerator{fail: true})

	sessions.add(domain.DaySaturday, "8:00am - 9:30am")
	sessions.add(domain.DaySunday, "8:00am - 9:30am")

	created, err := svc.Create(context.Background(), NewParticipant{
		Email:     "jane@example.org",
		Surname:   "Doe",
		FirstName: "Jane",
		Phone:     "0712345678",
	})
	require.NoError(t, err)
	assert.Empty(t, created.QRCodePath)
}

func TestParticipantService_Create_NoSessionsConfigured(t *testing.T) {
	_, _, svc := newParticipantTestStack(nil)

	_, err := svc.Create(context.Background(), NewParticipant{
		Email:     "jane@example.org",
		Surname:   "Doe",
		FirstName: "Jane",
		Phone:     "0712345678",
	})
	assert.ErrorIs(t, err, ErrNoSessionsConfigured)
}

func TestParticipantService_Create_DuplicateEmail(t *testing.T) {
	_, sessions, svc := newParticipantTestStack(nil)

	sessions.add(domain.DaySaturday, "8:00am - 9:30am")
	sessions.add(domain.DaySunday, "8:00am - 9:30am")

	input := NewParticipant{
		Email:     "jane@example.org",
		Surname:   "Doe",
		FirstName: "Jane",
		Phone:     "0712345678",
	}

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, ErrParticipantExists)
}

func TestParticipantService_ResetSessions(t *testing.T) {
	participants, sessions, svc := newParticipantTestStack(nil)

	first := sessions.add(domain.DaySaturday, "8:00am - 9:30am")
	second := sessions.add(domain.DaySaturday, "9:30am - 11:00am")

	// Everyone crammed into the first session.
	for i := 0; i < 4; i++ {
		participants.add(domain.Participant{Classroom: "203", SaturdaySessionID: first.ID})
	}

	moved, err := svc.ResetSessions(context.Background(), domain.DaySaturday)
	require.NoError(t, err)
	assert.Positive(t, moved)

	// The re-pick after every move keeps the two sessions balanced.
	var inFirst, inSecond int
	all, err := participants.ListAll(context.Background())
	require.NoError(t, err)
	for _, p := range all {
		switch p.SaturdaySessionID {
		case first.ID:
			inFirst++
		case second.ID:
			inSecond++
		}
	}
	assert.Equal(t, 2, inFirst)
	assert.Equal(t, 2, inSecond)
}

func TestParticipantService_ResetSessions_InvalidDay(t *testing.T) {
	_, _, svc := newParticipantTestStack(nil)

	_, err := svc.ResetSessions(context.Background(), "Friday")
	assert.ErrorIs(t, err, ErrInvalidDayType)
}

func TestParticipantService_GetByUniqueID(t *testing.T) {
	participants, _, svc := newParticipantTestStack(nil)

	participants.add(domain.Participant{UniqueID: "12345", Classroom: "203"})

	got, err := svc.GetByUniqueID(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", got.UniqueID)

	_, err = svc.GetByUniqueID(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/pkg/timeslot"
	"github.com/jaribu/attendance-api/internal/repository"
)

// In-memory fakes over the repository interfaces. A single mutex per fake
// stands in for the row locks the real DAO takes, which is enough to make
// the concurrency tests meaningful.

func testPlan() domain.ClassroomPlan {
	return domain.ClassroomPlan{
		LaptopRoom:   "205",
		NoLaptopRoom: "203",
		Quotas:       map[string]int{"205": 50, "203": 30},
	}
}

type fakeParticipantRepo struct {
	mu           sync.Mutex
	nextID       uint
	participants map[uint]domain.Participant
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{
		nextID:       1,
		participants: make(map[uint]domain.Participant),
	}
}

func (f *fakeParticipantRepo) add(p domain.Participant) domain.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()

	p.ID = f.nextID
	f.nextID++
	f.participants[p.ID] = p

	return p
}

func (f *fakeParticipantRepo) get(id uint) domain.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.participants[id]
}

func (f *fakeParticipantRepo) Create(_ context.Context, p domain.Participant) (domain.Participant, error) {
	f.mu.Lock()
	for _, existing := range f.participants {
		if existing.Email == p.Email {
			f.mu.Unlock()
			return domain.Participant{}, repository.ErrParticipantExists
		}
	}
	f.mu.Unlock()

	return f.add(p), nil
}

func (f *fakeParticipantRepo) FindByID(_ context.Context, id uint) (domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[id]
	if !ok {
		return domain.Participant{}, repository.ErrParticipantNotFound
	}

	return p, nil
}

func (f *fakeParticipantRepo) FindByUniqueID(_ context.Context, uniqueID string) (domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.participants {
		if p.UniqueID == uniqueID {
			return p, nil
		}
	}

	return domain.Participant{}, repository.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) UniqueIDExists(_ context.Context, uniqueID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.participants {
		if p.UniqueID == uniqueID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeParticipantRepo) ListAll(_ context.Context) ([]domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]domain.Participant, 0, len(f.participants))
	for id := uint(1); id < f.nextID; id++ {
		if p, ok := f.participants[id]; ok {
			all = append(all, p)
		}
	}

	return all, nil
}

func (f *fakeParticipantRepo) UpdateSessionForDay(_ context.Context, participantID uint, day string, sessionID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[participantID]
	if !ok {
		return repository.ErrParticipantNotFound
	}

	if day == domain.DaySaturday {
		p.SaturdaySessionID = sessionID
	} else {
		p.SundaySessionID = sessionID
	}
	f.participants[participantID] = p

	return nil
}

func (f *fakeParticipantRepo) UpdateQRCodePath(_ context.Context, participantID uint, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[participantID]
	if !ok {
		return repository.ErrParticipantNotFound
	}
	p.QRCodePath = path
	f.participants[participantID] = p

	return nil
}

// CountBySessionAndClassroom mirrors the store's convention: the larger of
// the per-day counts.
func (f *fakeParticipantRepo) CountBySessionAndClassroom(_ context.Context, sessionID uint, classroom string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.countLocked(sessionID, classroom), nil
}

func (f *fakeParticipantRepo) countLocked(sessionID uint, classroom string) int {
	var saturday, sunday int
	for _, p := range f.participants {
		if p.Classroom != classroom {
			continue
		}
		if p.SaturdaySessionID == sessionID {
			saturday++
		}
		if p.SundaySessionID == sessionID {
			sunday++
		}
	}

	if saturday > sunday {
		return saturday
	}

	return sunday
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	nextID   uint
	sessions []domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{nextID: 1}
}

func (f *fakeSessionRepo) add(day, slot string) domain.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := domain.Session{ID: f.nextID, Day: day, TimeSlot: timeslot.Normalize(slot)}
	f.nextID++
	f.sessions = append(f.sessions, s)

	return s
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id uint) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}

	return domain.Session{}, repository.ErrSessionNotFound
}

func (f *fakeSessionRepo) Resolve(_ context.Context, day, slot string) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	normalized := timeslot.Normalize(slot)
	for _, s := range f.sessions {
		if s.Day == day && s.TimeSlot == normalized {
			return s, nil
		}
	}

	return domain.Session{}, repository.ErrSessionNotFound
}

func (f *fakeSessionRepo) ListByDay(_ context.Context, day string) ([]domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Session
	for _, s := range f.sessions {
		if s.Day == day {
			out = append(out, s)
		}
	}

	return out, nil
}

func (f *fakeSessionRepo) EnsureForDay(ctx context.Context, day string, slots []string) error {
	for _, slot := range slots {
		if _, err := f.Resolve(ctx, day, slot); err == nil {
			continue
		}
		f.add(day, slot)
	}

	return nil
}

// fakeRequestRepo re-creates the transactional DAO behavior: the capacity,
// duplicate-pending, and cap checks run under the same lock that applies the
// write, so concurrent calls serialize exactly like FOR UPDATE rows do.
type fakeRequestRepo struct {
	mu           sync.Mutex
	nextID       uint
	requests     map[uint]domain.ReassignmentRequest
	participants *fakeParticipantRepo
	sessions     *fakeSessionRepo
}

func newFakeRequestRepo(participants *fakeParticipantRepo, sessions *fakeSessionRepo) *fakeRequestRepo {
	return &fakeRequestRepo{
		nextID:       1,
		requests:     make(map[uint]domain.ReassignmentRequest),
		participants: participants,
		sessions:     sessions,
	}
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id uint) (domain.ReassignmentRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.requests[id]
	if !ok {
		return domain.ReassignmentRequest{}, repository.ErrRequestNotFound
	}

	return r, nil
}

func (f *fakeRequestRepo) ListByParticipant(_ context.Context, participantID uint) ([]domain.RequestSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.RequestSummary
	for id := f.nextID; id >= 1; id-- {
		if r, ok := f.requests[id]; ok && r.ParticipantID == participantID {
			out = append(out, f.summaryLocked(r, false))
		}
	}

	return out, nil
}

func (f *fakeRequestRepo) ListPending(_ context.Context) ([]domain.RequestSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.RequestSummary
	for id := uint(1); id < f.nextID; id++ {
		if r, ok := f.requests[id]; ok && r.Status == domain.ReassignmentPending {
			out = append(out, f.summaryLocked(r, true))
		}
	}

	return out, nil
}

func (f *fakeRequestRepo) summaryLocked(r domain.ReassignmentRequest, includeParticipant bool) domain.RequestSummary {
	slotOf := func(id uint) string {
		for _, s := range f.sessions.sessions {
			if s.ID == id {
				return s.TimeSlot
			}
		}
		return ""
	}

	summary := domain.RequestSummary{
		ID:               r.ID,
		DayType:          r.DayType,
		CurrentSession:   slotOf(r.CurrentSessionID),
		RequestedSession: slotOf(r.RequestedSessionID),
		Reason:           r.Reason,
		Status:           r.Status,
		AdminNotes:       r.AdminNotes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if includeParticipant {
		p := f.participants.get(r.ParticipantID)
		summary.Participant = &p
	}

	return summary
}

func (f *fakeRequestRepo) HasPending(_ context.Context, participantID uint, dayType string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hasPendingLocked(participantID, dayType), nil
}

func (f *fakeRequestRepo) hasPendingLocked(participantID uint, dayType string) bool {
	for _, r := range f.requests {
		if r.ParticipantID == participantID && r.DayType == dayType && r.Status == domain.ReassignmentPending {
			return true
		}
	}

	return false
}

func (f *fakeRequestRepo) Create(_ context.Context, request domain.ReassignmentRequest, plan domain.ClassroomPlan) (domain.ReassignmentRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	participant := f.participants.get(request.ParticipantID)

	f.participants.mu.Lock()
	occupancy := f.participants.countLocked(request.RequestedSessionID, participant.Classroom)
	f.participants.mu.Unlock()
	if occupancy >= plan.QuotaFor(participant.Classroom) {
		return domain.ReassignmentRequest{}, repository.ErrCapacityExceeded
	}

	if f.hasPendingLocked(request.ParticipantID, request.DayType) {
		return domain.ReassignmentRequest{}, repository.ErrDuplicatePending
	}

	request.ID = f.nextID
	f.nextID++
	request.Status = domain.ReassignmentPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request

	return request, nil
}

func (f *fakeRequestRepo) Approve(_ context.Context, requestID, reviewerID uint, notes string, plan domain.ClassroomPlan) (domain.ReassignmentRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.requests[requestID]
	if !ok {
		return domain.ReassignmentRequest{}, repository.ErrRequestNotFound
	}
	if r.Status != domain.ReassignmentPending {
		return domain.ReassignmentRequest{}, repository.ErrAlreadyProcessed
	}

	f.participants.mu.Lock()
	participant := f.participants.participants[r.ParticipantID]

	if participant.ReassignmentsCount >= domain.MaxReassignments {
		f.participants.mu.Unlock()
		return domain.ReassignmentRequest{}, repository.ErrReassignmentsCapped
	}

	occupancy := f.participants.countLocked(r.RequestedSessionID, participant.Classroom)
	if occupancy >= plan.QuotaFor(participant.Classroom) {
		f.participants.mu.Unlock()
		// The request stays pending, matching the store.
		return domain.ReassignmentRequest{}, repository.ErrCapacityExceeded
	}

	if r.DayType == domain.DaySaturday {
		participant.SaturdaySessionID = r.RequestedSessionID
	} else {
		participant.SundaySessionID = r.RequestedSessionID
	}
	participant.ReassignmentsCount++
	f.participants.participants[participant.ID] = participant
	f.participants.mu.Unlock()

	now := time.Now()
	r.Status = domain.ReassignmentApproved
	r.AdminNotes = notes
	r.ReviewedBy = reviewerID
	r.ReviewedAt = &now
	r.UpdatedAt = now
	f.requests[requestID] = r

	return r, nil
}

func (f *fakeRequestRepo) Reject(_ context.Context, requestID, reviewerID uint, notes string) (domain.ReassignmentRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.requests[requestID]
	if !ok {
		return domain.ReassignmentRequest{}, repository.ErrRequestNotFound
	}
	if r.Status != domain.ReassignmentPending {
		return domain.ReassignmentRequest{}, repository.ErrAlreadyProcessed
	}

	now := time.Now()
	r.Status = domain.ReassignmentRejected
	r.AdminNotes = notes
	r.ReviewedBy = reviewerID
	r.ReviewedAt = &now
	r.UpdatedAt = now
	f.requests[requestID] = r

	return r, nil
}

type fakeAttendanceRepo struct {
	mu       sync.Mutex
	nextID   uint
	rows     []domain.Attendance
	sessions *fakeSessionRepo
}

func newFakeAttendanceRepo(sessions *fakeSessionRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1, sessions: sessions}
}

func (f *fakeAttendanceRepo) Record(_ context.Context, attendance domain.Attendance) (domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	attendance.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, attendance)

	return attendance, nil
}

func (f *fakeAttendanceRepo) HistoryByParticipant(ctx context.Context, participantID uint) ([]domain.AttendanceHistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.AttendanceHistoryEntry
	for i := len(f.rows) - 1; i >= 0; i-- {
		row := f.rows[i]
		if row.ParticipantID != participantID {
			continue
		}

		session, _ := f.sessions.FindByID(ctx, row.SessionID)
		out = append(out, domain.AttendanceHistoryEntry{
			Timestamp:      row.Timestamp,
			SessionDay:     session.Day,
			SessionSlot:    session.TimeSlot,
			CorrectSession: row.IsCorrectSession,
		})
	}

	return out, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends []string
}

func (f *fakeNotifier) Send(to, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sends = append(f.sends, to+": "+subject)

	return nil
}

type fakeQRGenerator struct {
	fail bool
}

func (f *fakeQRGenerator) Generate(uniqueID string) (string, error) {
	if f.fail {
		return "", context.DeadlineExceeded
	}

	return "/qrcodes/" + uniqueID + ".png", nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domain.User{}, repository.ErrUserExists
		}
	}

	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

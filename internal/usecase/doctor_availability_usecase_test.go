package usecase

import (
	"context"
	"io"
	"testing"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fakeAvailabilityRepo stores slots keyed by availability id, mirroring the
// unique-key semantics the real table enforces.
type fakeAvailabilityRepo struct {
	slots map[string]entity.DoctorAvailability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{slots: map[string]entity.DoctorAvailability{}}
}

func (r *fakeAvailabilityRepo) BulkInsertIgnoreConflicts(_ *gorm.DB, slots []entity.DoctorAvailability) (int64, error) {
	var inserted int64
	for _, slot := range slots {
		if _, exists := r.slots[slot.AvailabilityID]; exists {
			continue
		}
		r.slots[slot.AvailabilityID] = slot
		inserted++
	}
	return inserted, nil
}

func (r *fakeAvailabilityRepo) FindAll(_ *gorm.DB, _ *entity.AvailabilityFilter) ([]entity.DoctorAvailability, error) {
	out := make([]entity.DoctorAvailability, 0, len(r.slots))
	for _, slot := range r.slots {
		out = append(out, slot)
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) FindByAvailabilityID(_ *gorm.DB, availabilityID string) (*entity.DoctorAvailability, error) {
	slot, ok := r.slots[availabilityID]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (r *fakeAvailabilityRepo) FindByAppointmentID(_ *gorm.DB, appointmentID uuid.UUID) (*entity.DoctorAvailability, error) {
	for _, slot := range r.slots {
		if slot.AppointmentID != nil && *slot.AppointmentID == appointmentID {
			return &slot, nil
		}
	}
	return nil, nil
}

func (r *fakeAvailabilityRepo) Claim(_ *gorm.DB, availabilityID string, appointmentID uuid.UUID) (bool, error) {
	slot, ok := r.slots[availabilityID]
	if !ok || slot.IsBooked {
		return false, nil
	}
	slot.Book(appointmentID)
	r.slots[availabilityID] = slot
	return true, nil
}

func (r *fakeAvailabilityRepo) Update(_ *gorm.DB, slot *entity.DoctorAvailability) error {
	r.slots[slot.AvailabilityID] = *slot
	return nil
}

func (r *fakeAvailabilityRepo) Delete(_ *gorm.DB, availabilityID string) (int64, error) {
	if _, ok := r.slots[availabilityID]; !ok {
		return 0, nil
	}
	delete(r.slots, availabilityID)
	return 1, nil
}

// fakeScheduleRepo keeps templates in memory, grouped per doctor.
type fakeScheduleRepo struct {
	schedules map[uuid.UUID][]entity.DoctorSchedule
	calls     int
}

func (r *fakeScheduleRepo) Create(_ *gorm.DB, schedule *entity.DoctorSchedule) error {
	schedule.ID = uuid.New()
	if r.schedules == nil {
		r.schedules = map[uuid.UUID][]entity.DoctorSchedule{}
	}
	r.schedules[schedule.DoctorID] = append(r.schedules[schedule.DoctorID], *schedule)
	return nil
}

func (r *fakeScheduleRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.DoctorSchedule, error) {
	for _, list := range r.schedules {
		for _, s := range list {
			if s.ID == id {
				return &s, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) FindAll(_ *gorm.DB, _ *entity.ScheduleFilter) ([]entity.DoctorSchedule, error) {
	var out []entity.DoctorSchedule
	for _, list := range r.schedules {
		out = append(out, list...)
	}
	return out, nil
}

func (r *fakeScheduleRepo) FindActiveByDoctorID(_ *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	r.calls++
	var out []entity.DoctorSchedule
	for _, s := range r.schedules[doctorID] {
		if s.IsActive == nil || *s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Update(_ *gorm.DB, schedule *entity.DoctorSchedule) error {
	list := r.schedules[schedule.DoctorID]
	for i, s := range list {
		if s.ID == schedule.ID {
			list[i] = *schedule
			return nil
		}
	}
	return nil
}

func (r *fakeScheduleRepo) Delete(_ *gorm.DB, id uuid.UUID) (int64, error) {
	for doctorID, list := range r.schedules {
		for i, s := range list {
			if s.ID == id {
				r.schedules[doctorID] = append(list[:i], list[i+1:]...)
				return 1, nil
			}
		}
	}
	return 0, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{
		DB:      db,
		Context: context.Background(),
		Clauses: map[string]clause.Clause{},
	}
	return db
}

func newAvailabilityFixture(schedules ...entity.DoctorSchedule) (DoctorAvailabilityUsecase, *fakeAvailabilityRepo, uuid.UUID) {
	doctorID := uuid.New()
	availabilityRepo := newFakeAvailabilityRepo()
	scheduleRepo := &fakeScheduleRepo{schedules: map[uuid.UUID][]entity.DoctorSchedule{doctorID: schedules}}
	uc := NewDoctorAvailabilityUsecase(testDB(), testLogger(), availabilityRepo, scheduleRepo)
	return uc, availabilityRepo, doctorID
}

func TestGenerateCreatesSlots(t *testing.T) {
	uc, repo, doctorID := newAvailabilityFixture(mondaySchedule(15))

	result, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.GeneratedSlots)
	assert.Len(t, repo.slots, 4)
}

func TestGenerateIsIdempotent(t *testing.T) {
	uc, repo, doctorID := newAvailabilityFixture(mondaySchedule(15))
	req := &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
	}

	first, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4, first.GeneratedSlots)

	second, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.GeneratedSlots)
	assert.Len(t, repo.slots, 4)
}

func TestGenerateOverlappingRangeCountsNewSlotsOnly(t *testing.T) {
	uc, repo, doctorID := newAvailabilityFixture(mondaySchedule(15))

	first, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-08",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, first.GeneratedSlots)

	// Extended range covers the already-generated Monday plus one new one.
	second, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, second.GeneratedSlots)
	assert.Len(t, repo.slots, 8)
}

func TestGenerateNoActiveSchedules(t *testing.T) {
	uc, _, doctorID := newAvailabilityFixture()

	_, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-08",
	})

	assert.ErrorIs(t, err, ErrNoActiveSchedules)
}

func TestGenerateNoMatchingDaysSucceedsWithZero(t *testing.T) {
	uc, repo, doctorID := newAvailabilityFixture(mondaySchedule(15))

	// Tuesday through Sunday: the Monday template never matches.
	result, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-03",
		EndDate:   "2025-06-08",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.GeneratedSlots)
	assert.Empty(t, repo.slots)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	doctorID := uuid.New()
	scheduleRepo := &fakeScheduleRepo{schedules: map[uuid.UUID][]entity.DoctorSchedule{
		doctorID: {mondaySchedule(15)},
	}}
	uc := NewDoctorAvailabilityUsecase(testDB(), testLogger(), newFakeAvailabilityRepo(), scheduleRepo)

	_, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  "not-a-uuid",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-08",
	})
	assert.ErrorIs(t, err, ErrInvalidDoctorID)

	_, err = uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "06/02/2025",
		EndDate:   "2025-06-08",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "next week",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	// Validation failures never reach the schedule lookup.
	assert.Zero(t, scheduleRepo.calls)
}

func TestGetAvailabilityNotFound(t *testing.T) {
	uc, _, _ := newAvailabilityFixture(mondaySchedule(15))

	_, err := uc.GetAvailability(context.Background(), "avail-missing")

	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestDeleteAvailability(t *testing.T) {
	uc, repo, doctorID := newAvailabilityFixture(mondaySchedule(15))

	_, err := uc.Generate(context.Background(), &dto.GenerateAvailabilityRequest{
		DoctorID:  doctorID.String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
	})
	require.NoError(t, err)

	var id string
	for key := range repo.slots {
		id = key
		break
	}

	require.NoError(t, uc.DeleteAvailability(context.Background(), id))
	assert.Len(t, repo.slots, 3)

	err = uc.DeleteAvailability(context.Background(), id)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

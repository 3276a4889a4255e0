package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fakeConnPool satisfies gorm's ConnPool and ConnPoolBeginner plus the
// TxCommitter pair, so transactional usecases can run against fake repos
// without a database. No SQL ever reaches it because repositories are faked.
// Must be used as a pointer: gorm reflects on the committer and rejects
// non-nilable values.
type fakeConnPool struct{}

func (*fakeConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (*fakeConnPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errors.New("not implemented")
}

func (*fakeConnPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (*fakeConnPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (p *fakeConnPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return p, nil
}

func (*fakeConnPool) Commit() error { return nil }

func (*fakeConnPool) Rollback() error { return nil }

func txDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{ConnPool: &fakeConnPool{}}}
	db.Statement = &gorm.Statement{
		DB:       db,
		ConnPool: db.Config.ConnPool,
		Context:  context.Background(),
		Clauses:  map[string]clause.Clause{},
	}
	return db
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uuid.UUID]entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = uuid.New()
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindAll(_ *gorm.DB, _ *entity.AppointmentFilter) ([]entity.Appointment, error) {
	out := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) Update(_ *gorm.DB, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = *appointment
	return nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]entity.Doctor
}

func (r *fakeDoctorRepo) Create(_ *gorm.DB, _ *entity.Doctor) error { return nil }

func (r *fakeDoctorRepo) FindAll(_ *gorm.DB, _ *entity.DoctorFilter) ([]entity.Doctor, error) {
	return nil, nil
}

func (r *fakeDoctorRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *fakeDoctorRepo) Update(_ *gorm.DB, _ *entity.Doctor) error { return nil }

func (r *fakeDoctorRepo) Deactivate(_ *gorm.DB, _ uuid.UUID) (*entity.Doctor, error) {
	return nil, nil
}

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]entity.Hospital
}

func (r *fakeHospitalRepo) Create(_ *gorm.DB, _ *entity.Hospital) error { return nil }

func (r *fakeHospitalRepo) FindAll(_ *gorm.DB, _ *entity.HospitalFilter) ([]entity.Hospital, error) {
	return nil, nil
}

func (r *fakeHospitalRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	h, ok := r.hospitals[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *fakeHospitalRepo) Update(_ *gorm.DB, _ *entity.Hospital) error { return nil }

func (r *fakeHospitalRepo) Deactivate(_ *gorm.DB, _ uuid.UUID) (*entity.Hospital, error) {
	return nil, nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLog
}

func (r *fakeAuditRepo) Create(_ *gorm.DB, log *entity.AuditLog) error {
	r.entries = append(r.entries, *log)
	return nil
}

func (r *fakeAuditRepo) FindAll(_ *gorm.DB, _, _ int) ([]entity.AuditLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

type appointmentFixture struct {
	uc               AppointmentUsecase
	appointmentRepo  *fakeAppointmentRepo
	availabilityRepo *fakeAvailabilityRepo
	auditRepo        *fakeAuditRepo
	doctor           entity.Doctor
	hospital         entity.Hospital
}

func newAppointmentFixture() *appointmentFixture {
	doctor := entity.Doctor{
		ID:              uuid.New(),
		Name:            "Dr. Reyes",
		ConsultationFee: decimal.RequireFromString("150.00"),
	}
	hospital := entity.Hospital{ID: uuid.New(), Name: "Central Medical"}

	f := &appointmentFixture{
		appointmentRepo:  newFakeAppointmentRepo(),
		availabilityRepo: newFakeAvailabilityRepo(),
		auditRepo:        &fakeAuditRepo{},
		doctor:           doctor,
		hospital:         hospital,
	}
	f.uc = NewAppointmentUsecase(
		txDB(),
		testLogger(),
		f.appointmentRepo,
		&fakeDoctorRepo{doctors: map[uuid.UUID]entity.Doctor{doctor.ID: doctor}},
		&fakeHospitalRepo{hospitals: map[uuid.UUID]entity.Hospital{hospital.ID: hospital}},
		f.availabilityRepo,
		f.auditRepo,
	)
	return f
}

func (f *appointmentFixture) seedSlot(t *testing.T) entity.DoctorAvailability {
	t.Helper()
	slot := entity.DoctorAvailability{
		AvailabilityID: BuildAvailabilityID(f.doctor.ID, date(2025, 6, 2), "09:00"),
		DoctorID:       f.doctor.ID,
		Date:           date(2025, 6, 2),
		StartTime:      "09:00",
		EndTime:        "09:15",
	}
	f.availabilityRepo.slots[slot.AvailabilityID] = slot
	return slot
}

func TestCreateAppointmentBooksSlot(t *testing.T) {
	f := newAppointmentFixture()
	slot := f.seedSlot(t)

	result, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  slot.AvailabilityID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
		Reason:          "Annual checkup",
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusBooked), result.Status)
	assert.True(t, result.ConsultationFee.Equal(f.doctor.ConsultationFee))
	// Slot times win over the request body.
	assert.Equal(t, "09:15", result.EndTime)

	booked := f.availabilityRepo.slots[slot.AvailabilityID]
	assert.True(t, booked.IsBooked)
	require.NotNil(t, booked.AppointmentID)
	assert.Equal(t, result.ID, *booked.AppointmentID)

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActionAppointmentBook, f.auditRepo.entries[0].Action)
}

func TestCreateAppointmentSlotAlreadyBooked(t *testing.T) {
	f := newAppointmentFixture()
	slot := f.seedSlot(t)

	req := &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  slot.AvailabilityID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	}

	_, err := f.uc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Len(t, f.appointmentRepo.appointments, 1)
}

// staleReadAvailabilityRepo reports every slot as free on lookup regardless
// of stored state, imitating a read that raced with a concurrent booking.
type staleReadAvailabilityRepo struct {
	*fakeAvailabilityRepo
}

func (r *staleReadAvailabilityRepo) FindByAvailabilityID(db *gorm.DB, availabilityID string) (*entity.DoctorAvailability, error) {
	slot, err := r.fakeAvailabilityRepo.FindByAvailabilityID(db, availabilityID)
	if slot == nil || err != nil {
		return slot, err
	}
	stale := *slot
	stale.IsBooked = false
	stale.AppointmentID = nil
	return &stale, nil
}

func TestCreateAppointmentConcurrentClaim(t *testing.T) {
	f := newAppointmentFixture()
	slot := f.seedSlot(t)

	req := &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  slot.AvailabilityID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	}

	winner, err := f.uc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	// The loser read the slot before the winner committed, so its snapshot
	// still shows the slot as free. The conditional claim must reject it.
	racer := NewAppointmentUsecase(
		txDB(),
		testLogger(),
		f.appointmentRepo,
		&fakeDoctorRepo{doctors: map[uuid.UUID]entity.Doctor{f.doctor.ID: f.doctor}},
		&fakeHospitalRepo{hospitals: map[uuid.UUID]entity.Hospital{f.hospital.ID: f.hospital}},
		&staleReadAvailabilityRepo{fakeAvailabilityRepo: f.availabilityRepo},
		f.auditRepo,
	)

	_, err = racer.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	booked := f.availabilityRepo.slots[slot.AvailabilityID]
	require.NotNil(t, booked.AppointmentID)
	assert.Equal(t, winner.ID, *booked.AppointmentID)
}

func TestCreateAppointmentWithoutSlot(t *testing.T) {
	f := newAppointmentFixture()

	result, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AppointmentDate: "2025-06-02",
		StartTime:       "14:00",
	})

	require.NoError(t, err)
	assert.Nil(t, result.AvailabilityID)
	assert.Equal(t, "14:00", result.StartTime)
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        uuid.New(),
		HospitalID:      f.hospital.ID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      uuid.New(),
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	assert.ErrorIs(t, err, ErrHospitalNotFound)

	_, err = f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  "avail-missing",
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)

	_, err = f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AppointmentDate: "June 2nd",
		StartTime:       "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestCancelAppointmentReleasesSlot(t *testing.T) {
	f := newAppointmentFixture()
	slot := f.seedSlot(t)

	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  slot.AvailabilityID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	require.NoError(t, err)

	cancelled, err := f.uc.CancelAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), cancelled.Status)

	released := f.availabilityRepo.slots[slot.AvailabilityID]
	assert.False(t, released.IsBooked)
	assert.Nil(t, released.AppointmentID)

	// Booking audit plus cancellation audit.
	assert.Len(t, f.auditRepo.entries, 2)
}

func TestUpdateAppointmentToCancelledReleasesSlot(t *testing.T) {
	f := newAppointmentFixture()
	slot := f.seedSlot(t)

	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  slot.AvailabilityID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateAppointment(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		Status: string(entity.AppointmentStatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), updated.Status)

	released := f.availabilityRepo.slots[slot.AvailabilityID]
	assert.False(t, released.IsBooked)
	assert.Nil(t, released.AppointmentID)

	// Booking audit plus cancellation audit, same as the cancel endpoint.
	require.Len(t, f.auditRepo.entries, 2)
	assert.Equal(t, entity.AuditActionAppointmentCancel, f.auditRepo.entries[1].Action)
}

func TestUpdateAppointmentCancelledTwiceKeepsSingleAudit(t *testing.T) {
	f := newAppointmentFixture()
	slot := f.seedSlot(t)

	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AvailabilityID:  slot.AvailabilityID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateAppointment(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		Status: string(entity.AppointmentStatusCancelled),
	})
	require.NoError(t, err)

	// Repeating the same status is a no-op transition, not a second release.
	_, err = f.uc.UpdateAppointment(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		Status: string(entity.AppointmentStatusCancelled),
	})
	require.NoError(t, err)
	assert.Len(t, f.auditRepo.entries, 2)
}

func TestCancelAppointmentTwice(t *testing.T) {
	f := newAppointmentFixture()

	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	require.NoError(t, err)

	_, err = f.uc.CancelAppointment(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.uc.CancelAppointment(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAppointmentCancelled)
}

func TestCompleteAppointment(t *testing.T) {
	f := newAppointmentFixture()

	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          uuid.New(),
		DoctorID:        f.doctor.ID,
		HospitalID:      f.hospital.ID,
		AppointmentDate: "2025-06-02",
		StartTime:       "09:00",
	})
	require.NoError(t, err)

	completed, err := f.uc.CompleteAppointment(context.Background(), created.ID, &dto.CompleteAppointmentRequest{Notes: "All clear"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), completed.Status)
	assert.Equal(t, "All clear", completed.Notes)
}

func TestGetAppointmentNotFound(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.uc.GetAppointment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

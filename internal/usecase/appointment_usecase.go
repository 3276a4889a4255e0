package usecase

import (
	"context"
	"errors"
	"time"

	"carepoint-backend/internal/converter"
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSlotAlreadyBooked    = errors.New("availability slot is already booked")
	ErrAppointmentCancelled = errors.New("appointment is already cancelled")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	doctorRepo       repository.DoctorRepository
	hospitalRepo     repository.HospitalRepository
	availabilityRepo repository.DoctorAvailabilityRepository
	auditRepo        repository.AuditLogRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	hospitalRepo repository.HospitalRepository,
	availabilityRepo repository.DoctorAvailabilityRepository,
	auditRepo repository.AuditLogRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		doctorRepo:       doctorRepo,
		hospitalRepo:     hospitalRepo,
		availabilityRepo: availabilityRepo,
		auditRepo:        auditRepo,
	}
}

// CreateAppointment books a visit. When an availability id is supplied the
// slot is claimed inside the same transaction as the appointment insert, so
// two patients racing for one slot cannot both succeed.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointment := &entity.Appointment{
		UserID:          req.UserID,
		DoctorID:        req.DoctorID,
		HospitalID:      req.HospitalID,
		AppointmentDate: appointmentDate,
		StartTime:       req.StartTime,
		Status:          entity.AppointmentStatusBooked,
		Reason:          req.Reason,
		ConsultationFee: doctor.ConsultationFee,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	var slot *entity.DoctorAvailability
	if req.AvailabilityID != "" {
		slot, err = u.availabilityRepo.FindByAvailabilityID(tx, req.AvailabilityID)
		if err != nil {
			u.log.Warnf("Failed to find availability: %+v", err)
			return nil, err
		}
		if slot == nil {
			return nil, ErrAvailabilityNotFound
		}
		if slot.IsBooked {
			return nil, ErrSlotAlreadyBooked
		}
		appointment.AvailabilityID = &slot.AvailabilityID
		appointment.AppointmentDate = slot.Date
		appointment.StartTime = slot.StartTime
		appointment.EndTime = slot.EndTime
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if slot != nil {
		// Conditional claim, not a plain update: the IsBooked check above
		// reads a snapshot, so only RowsAffected on the claim decides.
		claimed, err := u.availabilityRepo.Claim(tx, slot.AvailabilityID, appointment.ID)
		if err != nil {
			u.log.Warnf("Failed to book availability slot: %+v", err)
			return nil, err
		}
		if !claimed {
			return nil, ErrSlotAlreadyBooked
		}
	}

	audit := &entity.AuditLog{
		UserID: &req.UserID,
		Action: entity.AuditActionAppointmentBook,
		Metadata: entity.JSON{
			"appointment_id": appointment.ID.String(),
			"doctor_id":      req.DoctorID.String(),
		},
	}
	if err := u.auditRepo.Create(tx, audit); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	appointment.Hospital = *hospital

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments:      converter.AppointmentsToResponses(appointments),
		TotalAppointments: len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment patches appointment fields. Setting status to cancelled
// here goes through the same slot release and audit as CancelAppointment, so
// the two paths cannot diverge.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	cancelling := entity.AppointmentStatus(req.Status) == entity.AppointmentStatusCancelled && !appointment.IsCancelled()

	if req.AppointmentDate != "" {
		appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.AppointmentDate = appointmentDate
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.StartTime = req.StartTime
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}
	if req.PaymentStatus != "" {
		appointment.PaymentStatus = req.PaymentStatus
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if cancelling {
		if err := u.releaseSlot(tx, appointment); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// releaseSlot frees the availability slot claimed by the appointment, if any,
// and records the cancellation in the audit log.
func (u *appointmentUsecase) releaseSlot(tx *gorm.DB, appointment *entity.Appointment) error {
	slot, err := u.availabilityRepo.FindByAppointmentID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to find availability for appointment: %+v", err)
		return err
	}
	if slot != nil {
		slot.Release()
		if err := u.availabilityRepo.Update(tx, slot); err != nil {
			u.log.Warnf("Failed to release availability slot: %+v", err)
			return err
		}
	}

	audit := &entity.AuditLog{
		UserID: &appointment.UserID,
		Action: entity.AuditActionAppointmentCancel,
		Metadata: entity.JSON{
			"appointment_id": appointment.ID.String(),
		},
	}
	if err := u.auditRepo.Create(tx, audit); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}
	return nil
}

// CancelAppointment cancels the booking and releases its availability slot,
// if one was claimed, in a single transaction.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	if err := u.releaseSlot(tx, appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	appointment.Complete()
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

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
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrNoActiveSchedules    = errors.New("no active schedules found for this doctor")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDoctorID      = errors.New("invalid doctor id")
)

type DoctorAvailabilityUsecase interface {
	Generate(ctx context.Context, req *dto.GenerateAvailabilityRequest) (*dto.GenerateAvailabilityResponse, error)
	GetAvailabilities(ctx context.Context, filter *entity.AvailabilityFilter) (*dto.AvailabilityListResponse, error)
	GetAvailability(ctx context.Context, availabilityID string) (*dto.AvailabilityResponse, error)
	UpdateAvailability(ctx context.Context, availabilityID string, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	DeleteAvailability(ctx context.Context, availabilityID string) error
}

type doctorAvailabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.DoctorAvailabilityRepository
	scheduleRepo     repository.DoctorScheduleRepository
}

func NewDoctorAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.DoctorAvailabilityRepository,
	scheduleRepo repository.DoctorScheduleRepository,
) DoctorAvailabilityUsecase {
	return &doctorAvailabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		scheduleRepo:     scheduleRepo,
	}
}

// Generate expands the doctor's active weekly templates into dated slots for
// the requested range and persists them in one conflict-ignoring bulk insert.
// Re-running the same request inserts nothing new, so the returned count only
// reflects slots created by this call.
func (u *doctorAvailabilityUsecase) Generate(ctx context.Context, req *dto.GenerateAvailabilityRequest) (*dto.GenerateAvailabilityResponse, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrInvalidDoctorID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	schedules, err := u.scheduleRepo.FindActiveByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrNoActiveSchedules
	}

	slots := ExpandSchedules(doctorID, schedules, startDate, endDate)
	if len(slots) == 0 {
		return &dto.GenerateAvailabilityResponse{GeneratedSlots: 0}, nil
	}

	inserted, err := u.availabilityRepo.BulkInsertIgnoreConflicts(db, slots)
	if err != nil {
		u.log.Warnf("Failed to insert availability slots: %+v", err)
		return nil, err
	}

	u.log.Infof("Generated %d availability slots for doctor %s (%s to %s)",
		inserted, doctorID, req.StartDate, req.EndDate)

	return &dto.GenerateAvailabilityResponse{GeneratedSlots: int(inserted)}, nil
}

func (u *doctorAvailabilityUsecase) GetAvailabilities(ctx context.Context, filter *entity.AvailabilityFilter) (*dto.AvailabilityListResponse, error) {
	slots, err := u.availabilityRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find availabilities: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Availabilities:      converter.AvailabilitiesToResponses(slots),
		TotalAvailabilities: len(slots),
	}, nil
}

func (u *doctorAvailabilityUsecase) GetAvailability(ctx context.Context, availabilityID string) (*dto.AvailabilityResponse, error) {
	slot, err := u.availabilityRepo.FindByAvailabilityID(u.db.WithContext(ctx), availabilityID)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrAvailabilityNotFound
	}

	return converter.AvailabilityToResponse(slot), nil
}

func (u *doctorAvailabilityUsecase) UpdateAvailability(ctx context.Context, availabilityID string, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	db := u.db.WithContext(ctx)

	slot, err := u.availabilityRepo.FindByAvailabilityID(db, availabilityID)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrAvailabilityNotFound
	}

	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		if _, err := time.Parse("15:04", req.EndTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		slot.EndTime = req.EndTime
	}
	if req.IsBooked != nil {
		slot.IsBooked = *req.IsBooked
		if !*req.IsBooked {
			slot.AppointmentID = nil
		}
	}
	if req.AppointmentID != nil {
		slot.AppointmentID = req.AppointmentID
	}

	if err := u.availabilityRepo.Update(db, slot); err != nil {
		u.log.Warnf("Failed to update availability: %+v", err)
		return nil, err
	}

	return converter.AvailabilityToResponse(slot), nil
}

func (u *doctorAvailabilityUsecase) DeleteAvailability(ctx context.Context, availabilityID string) error {
	deleted, err := u.availabilityRepo.Delete(u.db.WithContext(ctx), availabilityID)
	if err != nil {
		u.log.Warnf("Failed to delete availability: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

package usecase

import (
	"context"
	"errors"

	"carepoint-backend/internal/converter"
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
)

const defaultSlotDuration = 15 // minutes

type DoctorScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedules(ctx context.Context, filter *entity.ScheduleFilter) (*dto.ScheduleListResponse, error)
	GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, scheduleID uuid.UUID) error
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	doctorRepo   repository.DoctorRepository
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorRepository,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
	}
}

// validateWindow checks HH:MM formats and that the window is not inverted.
// Comparison is on minutes since midnight, not on the raw strings.
func validateWindow(startTime, endTime string) error {
	start, err := parseClock(startTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	end, err := parseClock(endTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	if start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)

	// Validate doctor exists
	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slotDuration := req.SlotDuration
	if slotDuration == 0 {
		slotDuration = defaultSlotDuration
	}

	active := true
	schedule := &entity.DoctorSchedule{
		DoctorID:     req.DoctorID,
		DayOfWeek:    req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: slotDuration,
		IsActive:     &active,
	}

	if err := u.scheduleRepo.Create(db, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetSchedules(ctx context.Context, filter *entity.ScheduleFilter) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)

	schedule, err := u.scheduleRepo.FindByID(db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.DayOfWeek != "" {
		schedule.DayOfWeek = req.DayOfWeek
	}
	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}
	if err := validateWindow(schedule.StartTime, schedule.EndTime); err != nil {
		return nil, err
	}
	if req.SlotDuration != nil {
		schedule.SlotDuration = *req.SlotDuration
	}
	if req.IsActive != nil {
		schedule.IsActive = req.IsActive
	}

	if err := u.scheduleRepo.Update(db, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID uuid.UUID) error {
	deleted, err := u.scheduleRepo.Delete(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

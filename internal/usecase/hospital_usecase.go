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

var ErrHospitalNotFound = errors.New("hospital not found")

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetHospitals(ctx context.Context, filter *entity.HospitalFilter) (*dto.HospitalListResponse, error)
	GetHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalResponse, error)
	UpdateHospital(ctx context.Context, hospitalID uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeactivateHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalResponse, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
}

func NewHospitalUsecase(db *gorm.DB, log *logrus.Logger, hospitalRepo repository.HospitalRepository) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
	}
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	emergencyServices := true
	if req.EmergencyServices != nil {
		emergencyServices = *req.EmergencyServices
	}

	active := true
	hospital := &entity.Hospital{
		Name:              req.Name,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		Country:           req.Country,
		Phone:             req.Phone,
		Email:             req.Email,
		Specialties:       entity.StringList(req.Specialties),
		Rating:            req.Rating,
		TotalBeds:         req.TotalBeds,
		AvailableBeds:     req.AvailableBeds,
		EmergencyServices: emergencyServices,
		IsActive:          &active,
	}

	if err := u.hospitalRepo.Create(u.db.WithContext(ctx), hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospitals(ctx context.Context, filter *entity.HospitalFilter) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals:      converter.HospitalsToResponses(hospitals),
		TotalHospitals: len(hospitals),
	}, nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, hospitalID uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if req.Name != "" {
		hospital.Name = req.Name
	}
	if req.Street != "" {
		hospital.Street = req.Street
	}
	if req.City != "" {
		hospital.City = req.City
	}
	if req.State != "" {
		hospital.State = req.State
	}
	if req.ZipCode != "" {
		hospital.ZipCode = req.ZipCode
	}
	if req.Country != "" {
		hospital.Country = req.Country
	}
	if req.Phone != "" {
		hospital.Phone = req.Phone
	}
	if req.Email != "" {
		hospital.Email = req.Email
	}
	if req.Specialties != nil {
		hospital.Specialties = entity.StringList(req.Specialties)
	}
	if req.Rating != nil {
		hospital.Rating = *req.Rating
	}
	if req.TotalBeds != nil {
		hospital.TotalBeds = *req.TotalBeds
	}
	if req.AvailableBeds != nil {
		hospital.AvailableBeds = *req.AvailableBeds
	}
	if req.EmergencyServices != nil {
		hospital.EmergencyServices = *req.EmergencyServices
	}

	if err := u.hospitalRepo.Update(db, hospital); err != nil {
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) DeactivateHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.Deactivate(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to deactivate hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

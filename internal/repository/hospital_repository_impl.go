package repository

import (
	"errors"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Create(hospital).Error
}

func (r *hospitalRepository) FindAll(db *gorm.DB, filter *entity.HospitalFilter) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	query := db
	if filter != nil {
		if filter.City != "" {
			query = query.Where("city ILIKE ?", "%"+filter.City+"%")
		}
		if filter.Specialty != "" {
			// Specialties are stored as a JSONB array of strings.
			query = query.Where("specialties @> ?", `["`+filter.Specialty+`"]`)
		}
		if filter.EmergencyServices != nil {
			query = query.Where("emergency_services = ?", *filter.EmergencyServices)
		}
		if filter.IsActive != nil {
			query = query.Where("is_active = ?", *filter.IsActive)
		}
	}
	err := query.Order("name ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit("Doctors").Save(hospital).Error
}

func (r *hospitalRepository) Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	hospital, err := r.FindByID(db, id)
	if err != nil || hospital == nil {
		return nil, err
	}
	inactive := false
	hospital.IsActive = &inactive
	if err := db.Model(hospital).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	return hospital, nil
}

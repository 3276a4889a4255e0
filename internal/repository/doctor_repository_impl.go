package repository

import (
	"errors"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db
	if filter != nil {
		if filter.Specialty != "" {
			query = query.Where("specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.HospitalID != nil {
			query = query.Where("hospital_id = ?", *filter.HospitalID)
		}
		if filter.Name != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.IsActive != nil {
			query = query.Where("is_active = ?", *filter.IsActive)
		}
	}
	err := query.Preload("Hospital").Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Hospital").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Hospital", "Schedules").Save(doctor).Error
}

func (r *doctorRepository) Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := r.FindByID(db, id)
	if err != nil || doctor == nil {
		return nil, err
	}
	inactive := false
	doctor.IsActive = &inactive
	if err := db.Model(doctor).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	return doctor, nil
}

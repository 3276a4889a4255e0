package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialty:       doctor.Specialty,
		HospitalID:      doctor.HospitalID,
		Qualification:   doctor.Qualification,
		ExperienceYears: doctor.ExperienceYears,
		Phone:           doctor.Phone,
		Email:           doctor.Email,
		ConsultationFee: doctor.ConsultationFee,
		Rating:          doctor.Rating,
		IsActive:        doctor.IsActive,
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}

	// Include hospital info if preloaded
	if doctor.Hospital.ID != uuid.Nil {
		response.Hospital = HospitalToResponse(&doctor.Hospital)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}

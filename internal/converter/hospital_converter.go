package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}
	return &dto.HospitalResponse{
		ID:                hospital.ID,
		Name:              hospital.Name,
		Street:            hospital.Street,
		City:              hospital.City,
		State:             hospital.State,
		ZipCode:           hospital.ZipCode,
		Country:           hospital.Country,
		Phone:             hospital.Phone,
		Email:             hospital.Email,
		Specialties:       hospital.Specialties,
		Rating:            hospital.Rating,
		TotalBeds:         hospital.TotalBeds,
		AvailableBeds:     hospital.AvailableBeds,
		EmergencyServices: hospital.EmergencyServices,
		IsActive:          hospital.IsActive,
		CreatedAt:         hospital.CreatedAt,
		UpdatedAt:         hospital.UpdatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		responses[i] = *HospitalToResponse(&hospital)
	}
	return responses
}

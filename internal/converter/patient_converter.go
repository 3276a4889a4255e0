package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:        patient.ID,
		UserID:    patient.UserID,
		Name:      patient.Name,
		Email:     patient.Email,
		Phone:     patient.Phone,
		Gender:    patient.Gender,
		Address:   patient.Address,
		IsActive:  patient.IsActive,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}
	return response
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}

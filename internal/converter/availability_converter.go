package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
)

// AvailabilityToResponse converts a DoctorAvailability entity to its DTO
func AvailabilityToResponse(slot *entity.DoctorAvailability) *dto.AvailabilityResponse {
	if slot == nil {
		return nil
	}
	return &dto.AvailabilityResponse{
		AvailabilityID: slot.AvailabilityID,
		DoctorID:       slot.DoctorID,
		Date:           slot.Date.Format("2006-01-02"),
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		IsBooked:       slot.IsBooked,
		AppointmentID:  slot.AppointmentID,
		CreatedAt:      slot.CreatedAt,
		UpdatedAt:      slot.UpdatedAt,
	}
}

// AvailabilitiesToResponses converts a slice of slots to DTOs
func AvailabilitiesToResponses(slots []entity.DoctorAvailability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(slots))
	for i, slot := range slots {
		responses[i] = *AvailabilityToResponse(&slot)
	}
	return responses
}

package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		DoctorID:        appointment.DoctorID,
		HospitalID:      appointment.HospitalID,
		AvailabilityID:  appointment.AvailabilityID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		ConsultationFee: appointment.ConsultationFee,
		PaymentStatus:   appointment.PaymentStatus,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Doctor.ID != uuid.Nil {
		response.DoctorName = appointment.Doctor.Name
	}
	if appointment.Hospital.ID != uuid.Nil {
		response.HospitalName = appointment.Hospital.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

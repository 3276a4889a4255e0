package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/response"
	"carepoint-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorAvailabilityHandler struct {
	availabilityUsecase usecase.DoctorAvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewDoctorAvailabilityHandler(availabilityUsecase usecase.DoctorAvailabilityUsecase, validator *validator.CustomValidator) *DoctorAvailabilityHandler {
	return &DoctorAvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *DoctorAvailabilityHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Missing required fields", h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.availabilityUsecase.Generate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDoctorID:
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrNoActiveSchedules:
			response.NotFound(w, "No active schedules found for this doctor")
		default:
			response.InternalServerError(w, "Failed to generate availability slots")
		}
		return
	}

	message := fmt.Sprintf("Generated %d availability slots", result.GeneratedSlots)
	response.Success(w, http.StatusCreated, message, result)
}

func (h *DoctorAvailabilityHandler) GetAvailabilities(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AvailabilityFilter{}

	query := r.URL.Query()
	if doctorID := query.Get("doctor_id"); doctorID != "" {
		id, err := uuid.Parse(doctorID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
			return
		}
		filter.DoctorID = &id
	}
	if date := query.Get("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		filter.Date = &parsed
	}
	if isBooked := query.Get("is_booked"); isBooked != "" {
		booked := isBooked == "true"
		filter.IsBooked = &booked
	}

	availabilities, err := h.availabilityUsecase.GetAvailabilities(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get availabilities")
		return
	}

	response.Success(w, http.StatusOK, "Availabilities retrieved successfully", availabilities)
}

func (h *DoctorAvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	availabilityID := vars["id"]

	availability, err := h.availabilityUsecase.GetAvailability(r.Context(), availabilityID)
	if err != nil {
		if err == usecase.ErrAvailabilityNotFound {
			response.NotFound(w, "Availability not found")
			return
		}
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *DoctorAvailabilityHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	availabilityID := vars["id"]

	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.availabilityUsecase.UpdateAvailability(r.Context(), availabilityID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAvailabilityNotFound:
			response.NotFound(w, "Availability not found")
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to update availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}

func (h *DoctorAvailabilityHandler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	availabilityID := vars["id"]

	if err := h.availabilityUsecase.DeleteAvailability(r.Context(), availabilityID); err != nil {
		if err == usecase.ErrAvailabilityNotFound {
			response.NotFound(w, "Availability not found")
			return
		}
		response.InternalServerError(w, "Failed to delete availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted successfully", nil)
}

package handler

import (
	"encoding/json"
	"net/http"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/response"
	"carepoint-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *HospitalHandler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	filter := &entity.HospitalFilter{}

	query := r.URL.Query()
	if city := query.Get("city"); city != "" {
		filter.City = city
	}
	if specialty := query.Get("specialty"); specialty != "" {
		filter.Specialty = specialty
	}
	if emergency := query.Get("emergency_services"); emergency != "" {
		hasEmergency := emergency == "true"
		filter.EmergencyServices = &hasEmergency
	}

	hospitals, err := h.hospitalUsecase.GetHospitals(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), hospitalID)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.UpdateHospital(r.Context(), hospitalID, &req)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to update hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

func (h *HospitalHandler) DeactivateHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.DeactivateHospital(r.Context(), hospitalID)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital deactivated successfully", hospital)
}

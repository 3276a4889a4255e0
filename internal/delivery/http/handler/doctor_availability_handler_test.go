package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/response"
	"carepoint-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAvailabilityUsecase returns canned results so handler tests exercise
// status mapping without touching a database.
type stubAvailabilityUsecase struct {
	generateResult *dto.GenerateAvailabilityResponse
	generateErr    error
	getErr         error
	deleteErr      error

	lastGenerate *dto.GenerateAvailabilityRequest
}

func (s *stubAvailabilityUsecase) Generate(_ context.Context, request *dto.GenerateAvailabilityRequest) (*dto.GenerateAvailabilityResponse, error) {
	s.lastGenerate = request
	return s.generateResult, s.generateErr
}

func (s *stubAvailabilityUsecase) GetAvailabilities(_ context.Context, _ *entity.AvailabilityFilter) (*dto.AvailabilityListResponse, error) {
	return &dto.AvailabilityListResponse{Availabilities: []dto.AvailabilityResponse{}}, s.getErr
}

func (s *stubAvailabilityUsecase) GetAvailability(_ context.Context, _ string) (*dto.AvailabilityResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &dto.AvailabilityResponse{}, nil
}

func (s *stubAvailabilityUsecase) UpdateAvailability(_ context.Context, _ string, _ *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	return &dto.AvailabilityResponse{}, nil
}

func (s *stubAvailabilityUsecase) DeleteAvailability(_ context.Context, _ string) error {
	return s.deleteErr
}

func newGenerateRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/v1/doctor-availabilities/generate", bytes.NewReader(raw))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubAvailabilityUsecase{generateResult: &dto.GenerateAvailabilityResponse{GeneratedSlots: 40}}
	h := NewDoctorAvailabilityHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Generate(rec, newGenerateRequest(t, dto.GenerateAvailabilityRequest{
		DoctorID:  uuid.New().String(),
		StartDate: "2025-06-02",
		EndDate:   "2025-06-08",
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	res := decodeResponse(t, rec)
	assert.True(t, res.Success)
	assert.Equal(t, "Generated 40 availability slots", res.Message)
}

// The request body uses camelCase keys. Guard the tags with a raw body so a
// struct-marshaled request cannot hide a casing regression.
func TestGenerateAcceptsCamelCaseBody(t *testing.T) {
	stub := &stubAvailabilityUsecase{generateResult: &dto.GenerateAvailabilityResponse{GeneratedSlots: 4}}
	h := NewDoctorAvailabilityHandler(stub, validator.NewValidator())

	doctorID := uuid.New().String()
	body := fmt.Sprintf(`{"doctorId":%q,"startDate":"2025-06-02","endDate":"2025-06-08"}`, doctorID)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctor-availabilities/generate", bytes.NewReader([]byte(body)))
	h.Generate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.lastGenerate)
	assert.Equal(t, doctorID, stub.lastGenerate.DoctorID)
	assert.Equal(t, "2025-06-02", stub.lastGenerate.StartDate)
	assert.Equal(t, "2025-06-08", stub.lastGenerate.EndDate)
}

func TestGenerateMissingFields(t *testing.T) {
	stub := &stubAvailabilityUsecase{generateResult: &dto.GenerateAvailabilityResponse{}}
	h := NewDoctorAvailabilityHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Generate(rec, newGenerateRequest(t, map[string]string{"doctorId": uuid.New().String()}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	res := decodeResponse(t, rec)
	assert.False(t, res.Success)
	assert.Equal(t, "Missing required fields", res.Message)
}

func TestGenerateInvalidBody(t *testing.T) {
	h := NewDoctorAvailabilityHandler(&stubAvailabilityUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctor-availabilities/generate", bytes.NewReader([]byte("{")))
	h.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"no schedules", usecase.ErrNoActiveSchedules, http.StatusNotFound, "No active schedules found for this doctor"},
		{"bad doctor id", usecase.ErrInvalidDoctorID, http.StatusBadRequest, "Invalid doctor ID"},
		{"bad date", usecase.ErrInvalidDateFormat, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD"},
		{"database failure", errors.New("connection reset"), http.StatusInternalServerError, "Failed to generate availability slots"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewDoctorAvailabilityHandler(&stubAvailabilityUsecase{generateErr: tc.err}, validator.NewValidator())

			rec := httptest.NewRecorder()
			h.Generate(rec, newGenerateRequest(t, dto.GenerateAvailabilityRequest{
				DoctorID:  uuid.New().String(),
				StartDate: "2025-06-02",
				EndDate:   "2025-06-08",
			}))

			assert.Equal(t, tc.wantStatus, rec.Code)
			res := decodeResponse(t, rec)
			assert.False(t, res.Success)
			assert.Equal(t, tc.wantMsg, res.Message)
		})
	}
}

func TestGetAvailabilitiesRejectsBadFilters(t *testing.T) {
	h := NewDoctorAvailabilityHandler(&stubAvailabilityUsecase{}, validator.NewValidator())

	for _, query := range []string{"doctor_id=nope", "date=tomorrow"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/doctor-availabilities?%s", query), nil)
		h.GetAvailabilities(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestDeleteAvailabilityNotFound(t *testing.T) {
	h := NewDoctorAvailabilityHandler(&stubAvailabilityUsecase{deleteErr: usecase.ErrAvailabilityNotFound}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/doctor-availabilities/avail-x", nil)
	h.DeleteAvailability(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

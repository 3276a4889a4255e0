package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carepoint-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// testRouter builds the full route table. Handlers stay nil because route
// matching never invokes them; middleware chains are likewise not executed.
func testRouter() *mux.Router {
	r := NewRouter(
		nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
		middleware.NewAuthMiddleware(nil, nil),
		middleware.NewCORSMiddleware(),
	)
	return r.Setup()
}

func TestAvailabilityRouteTable(t *testing.T) {
	router := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/doctor-availabilities"},
		{http.MethodGet, "/api/v1/doctor-availabilities/avail-x-2025-06-02-0900"},
		{http.MethodPost, "/api/v1/doctor-availabilities/generate"},
		{http.MethodPut, "/api/v1/doctor-availabilities/avail-x-2025-06-02-0900"},
		{http.MethodDelete, "/api/v1/doctor-availabilities/avail-x-2025-06-02-0900"},
	}

	for _, tc := range cases {
		var match mux.RouteMatch
		req := httptest.NewRequest(tc.method, tc.path, nil)
		assert.True(t, router.Match(req, &match), "%s %s", tc.method, tc.path)
		assert.NoError(t, match.MatchErr, "%s %s", tc.method, tc.path)
	}
}

func TestAppointmentRouteTable(t *testing.T) {
	router := testRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/appointments"},
		{http.MethodPut, "/api/v1/appointments/3f0b8dff-0000-0000-0000-000000000000"},
		{http.MethodDelete, "/api/v1/appointments/3f0b8dff-0000-0000-0000-000000000000"},
	} {
		var match mux.RouteMatch
		req := httptest.NewRequest(tc.method, tc.path, nil)
		assert.True(t, router.Match(req, &match), "%s %s", tc.method, tc.path)
	}
}

package http

import (
	"net/http"

	"carepoint-backend/internal/delivery/http/handler"
	"carepoint-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	hospitalHandler     *handler.HospitalHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	scheduleHandler     *handler.DoctorScheduleHandler
	availabilityHandler *handler.DoctorAvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	categoryHandler     *handler.CategoryHandler
	productHandler      *handler.ProductHandler
	cartHandler         *handler.CartHandler
	orderHandler        *handler.OrderHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	scheduleHandler *handler.DoctorScheduleHandler,
	availabilityHandler *handler.DoctorAvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		hospitalHandler:     hospitalHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		scheduleHandler:     scheduleHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		categoryHandler:     categoryHandler,
		productHandler:      productHandler,
		cartHandler:         cartHandler,
		orderHandler:        orderHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public browse routes
	api.HandleFunc("/hospitals", r.hospitalHandler.GetHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/categories", r.categoryHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", r.categoryHandler.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/doctor-availabilities", r.availabilityHandler.GetAvailabilities).Methods(http.MethodGet)
	api.HandleFunc("/doctor-availabilities/{id}", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)

	// Protected routes (any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Slot generation and slot management require admin or doctor
	availabilities := api.PathPrefix("/doctor-availabilities").Subrouter()
	availabilities.Use(r.authMiddleware.Authenticate)
	availabilities.Use(middleware.RequireAdminOrDoctor)
	availabilities.HandleFunc("/generate", r.availabilityHandler.Generate).Methods(http.MethodPost)
	availabilities.HandleFunc("/{id}", r.availabilityHandler.UpdateAvailability).Methods(http.MethodPut)
	availabilities.HandleFunc("/{id}", r.availabilityHandler.DeleteAvailability).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)

	// Patient profile (own)
	protected.HandleFunc("/patients/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	// Cart
	protected.HandleFunc("/cart", r.cartHandler.GetCart).Methods(http.MethodGet)
	protected.HandleFunc("/cart", r.cartHandler.ClearCart).Methods(http.MethodDelete)
	protected.HandleFunc("/cart/items", r.cartHandler.AddItem).Methods(http.MethodPost)
	protected.HandleFunc("/cart/items/{productId}", r.cartHandler.UpdateItem).Methods(http.MethodPut)
	protected.HandleFunc("/cart/items/{productId}", r.cartHandler.RemoveItem).Methods(http.MethodDelete)

	// Orders
	protected.HandleFunc("/orders/checkout", r.orderHandler.Checkout).Methods(http.MethodPost)
	protected.HandleFunc("/orders", r.orderHandler.GetMyOrders).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}", r.orderHandler.GetOrder).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeactivateUser).Methods(http.MethodDelete)

	// Hospital management (admin)
	admin.HandleFunc("/hospitals", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.UpdateHospital).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.DeactivateHospital).Methods(http.MethodDelete)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeactivateDoctor).Methods(http.MethodDelete)

	// Patient management (admin)
	admin.HandleFunc("/patients", r.patientHandler.GetPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.DeactivatePatient).Methods(http.MethodDelete)

	// Catalog management (admin)
	admin.HandleFunc("/categories", r.categoryHandler.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", r.categoryHandler.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id}", r.categoryHandler.DeactivateCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/products", r.productHandler.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", r.productHandler.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", r.productHandler.DeactivateProduct).Methods(http.MethodDelete)

	// Order management (admin)
	admin.HandleFunc("/orders/{id}/status", r.orderHandler.UpdateOrderStatus).Methods(http.MethodPut)

	// Availability and schedule management (admin or doctor)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireAdminOrDoctor)
	staff.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	staff.HandleFunc("/schedules", r.scheduleHandler.GetSchedules).Methods(http.MethodGet)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	// Audit logs (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

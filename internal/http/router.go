package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rentezi-backend/internal/handlers"
	"rentezi-backend/internal/middleware"
	"rentezi-backend/internal/models"
	"rentezi-backend/internal/monitoring"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	propertyHandler *handlers.PropertyHandler,
	unitHandler *handlers.UnitHandler,
	assignmentHandler *handlers.AssignmentHandler,
	paymentHandler *handlers.PaymentHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	userHandler *handlers.UserHandler,
	loginLogHandler *handlers.LoginLogHandler,
	healthHandler *handlers.HealthHandler,
	monitor *monitoring.Monitor,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes - Properties
	propertiesAPI := r.PathPrefix("/api/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", propertyHandler.Create).Methods("POST")
	propertiesAPI.HandleFunc("", propertyHandler.List).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Get).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Update).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Delete).Methods("DELETE")
	propertiesAPI.HandleFunc("/{propertyId}/units", unitHandler.Create).Methods("POST")
	propertiesAPI.HandleFunc("/{propertyId}/units", unitHandler.ListByProperty).Methods("GET")

	// Protected API routes - Units
	unitsAPI := r.PathPrefix("/api/units").Subrouter()
	unitsAPI.Use(authMiddleware.Authenticate)
	unitsAPI.HandleFunc("/vacant", unitHandler.ListVacant).Methods("GET")
	unitsAPI.HandleFunc("/{id}", unitHandler.Get).Methods("GET")

	// Protected API routes - Assignments
	assignmentsAPI := r.PathPrefix("/api/assignments").Subrouter()
	assignmentsAPI.Use(authMiddleware.Authenticate)
	assignmentsAPI.HandleFunc("/units/{unitId}/assign", assignmentHandler.Assign).Methods("POST")
	assignmentsAPI.HandleFunc("/tenant/assignments", assignmentHandler.ListMine).Methods("GET")
	assignmentsAPI.HandleFunc("/landlord/assignments", assignmentHandler.List).Methods("GET")
	assignmentsAPI.HandleFunc("/{id}/end", assignmentHandler.End).Methods("POST")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.Create).Methods("POST")
	paymentsAPI.HandleFunc("/tenant/payments", paymentHandler.ListMine).Methods("GET")
	paymentsAPI.HandleFunc("/landlord/payments", paymentHandler.List).Methods("GET")
	paymentsAPI.HandleFunc("/{id}/status", paymentHandler.UpdateStatus).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}/receipt", paymentHandler.Receipt).Methods("GET")

	// Protected API routes - Maintenance
	maintenanceAPI := r.PathPrefix("/api/maintenance").Subrouter()
	maintenanceAPI.Use(authMiddleware.Authenticate)
	maintenanceAPI.HandleFunc("", maintenanceHandler.Create).Methods("POST")
	maintenanceAPI.HandleFunc("/tenant/requests", maintenanceHandler.ListMine).Methods("GET")
	maintenanceAPI.HandleFunc("/landlord/requests", maintenanceHandler.List).Methods("GET")
	maintenanceAPI.HandleFunc("/{id}/status", maintenanceHandler.UpdateStatus).Methods("PUT")

	// Protected API routes - Users
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("/tenants", userHandler.ListTenants).Methods("GET")

	// Protected API routes - Login logs (admin only)
	logsAPI := r.PathPrefix("/api/login-logs").Subrouter()
	logsAPI.Use(authMiddleware.Authenticate)
	logsAPI.Use(authMiddleware.RequireRole(models.RoleAdmin))
	logsAPI.HandleFunc("", loginLogHandler.ListRecent).Methods("GET")

	// Protected API routes - Monitoring (admin only, nil when disabled)
	if monitor != nil {
		monitoringAPI := r.PathPrefix("/api/monitoring").Subrouter()
		monitoringAPI.Use(authMiddleware.Authenticate)
		monitoringAPI.Use(authMiddleware.RequireRole(models.RoleAdmin))
		monitoringAPI.HandleFunc("/stats", monitor.StatsHandler).Methods("GET")
		monitoringAPI.HandleFunc("/live", monitor.LiveHandler).Methods("GET")
	}

	return r
}

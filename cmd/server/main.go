package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"rentezi-backend/internal/auth"
	"rentezi-backend/internal/cache"
	"rentezi-backend/internal/config"
	"rentezi-backend/internal/database"
	"rentezi-backend/internal/db"
	"rentezi-backend/internal/handlers"
	"rentezi-backend/internal/health"
	h "rentezi-backend/internal/http"
	"rentezi-backend/internal/middleware"
	"rentezi-backend/internal/monitoring"
	"rentezi-backend/internal/repositories"
	"rentezi-backend/internal/services"
	"rentezi-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; without it logins fall back to bcrypt only.
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (running without cache)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	assignmentRepo := repositories.NewAssignmentRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool)
	loginLogRepo := repositories.NewLoginLogRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	propertyService := services.NewPropertyService(propertyRepo)
	unitService := services.NewUnitService(unitRepo, propertyRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, unitRepo, userRepo)
	paymentService := services.NewPaymentService(paymentRepo, assignmentRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, unitRepo, assignmentRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, loginLogRepo)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	unitHandler := handlers.NewUnitHandler(unitService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	userHandler := handlers.NewUserHandler(userService)
	loginLogHandler := handlers.NewLoginLogHandler(loginLogRepo)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	var monitor *monitoring.Monitor
	if cfg.Monitoring.Enabled {
		monitor = monitoring.NewMonitor(pool)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		propertyHandler,
		unitHandler,
		assignmentHandler,
		paymentHandler,
		maintenanceHandler,
		userHandler,
		loginLogHandler,
		healthHandler,
		monitor,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	// No WriteTimeout: the monitoring websocket stream is long-lived.
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// File: versatil/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"versatil/config"
	"versatil/database"
	appointmentRepoPkg "versatil/database/repository/appointment"
	clientRepoPkg "versatil/database/repository/client"
	serviceRepoPkg "versatil/database/repository/service"
	workerRepoPkg "versatil/database/repository/worker"
	"versatil/handlers"
	"versatil/middleware"
	"versatil/routes"
	"versatil/services/availability"
	"versatil/services/booking"
	"versatil/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()

	for name, repo := range map[string]interface{ EnsureIndexes() error }{
		"workers":      workerRepo,
		"appointments": appointmentRepo,
		"services":     serviceRepo,
		"clients":      clientRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		WorkerRepo:      workerRepo,
		AppointmentRepo: appointmentRepo,
		ServiceRepo:     serviceRepo,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	bookingService := &booking.DefaultBookingSessionService{
		Store:           sessionStore,
		Availability:    availabilityService,
		WorkerRepo:      workerRepo,
		ServiceRepo:     serviceRepo,
		ClientRepo:      clientRepo,
		AppointmentRepo: appointmentRepo,
	}

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(serviceRepo, workerRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	routes.RegisterRoutes(router, catalogHandler, availabilityHandler, bookingHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

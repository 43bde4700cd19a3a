// File: petsit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petsit/config"
	"petsit/cron"
	"petsit/database"
	"petsit/handlers"
	"petsit/routes"
	"petsit/services/availability"
	"petsit/services/booking"
	"petsit/utils"

	bookingRepoPkg "petsit/database/repository/booking"
	petpassRepoPkg "petsit/database/repository/petpass"
	profileRepoPkg "petsit/database/repository/profile"
	slotRepoPkg "petsit/database/repository/slot"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	petpassRepo := petpassRepoPkg.NewMongoPetPassRepo()

	if err := slotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure slot indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Slots:    slotRepo,
		Bookings: bookingRepo,
		Cache:    utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:     bookingRepo,
		Slots:        slotRepo,
		Profiles:     profileRepo,
		PetPasses:    petpassRepo,
		Availability: availabilityService,
		Sessions:     utils.GetSessionCacheClient(),
	}

	slotHandler := handlers.NewSlotHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Register routes.
	routes.RegisterRoutes(router, slotHandler, bookingHandler)

	// Background status sweep.
	cron.InitStatusSweepWorker(bookingService)

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

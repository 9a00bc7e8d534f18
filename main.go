// File: gamecoach/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecoach/config"
	gccron "gamecoach/cron"
	"gamecoach/database"
	bookingRepoPkg "gamecoach/database/repository/booking"
	coachRepoPkg "gamecoach/database/repository/coach"
	"gamecoach/handlers"
	"gamecoach/middleware"
	"gamecoach/routes"
	"gamecoach/services/booking"
	"gamecoach/services/coach"
	"gamecoach/services/notification"
	"gamecoach/services/tasks"
	"gamecoach/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
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
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	coachRepo := coachRepoPkg.NewMongoCoachRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	coachService := &coach.DefaultCoachService{
		Repo: coachRepo,
	}
	notificationService := &notification.EmailNotificationService{
		CoachRepo: coachRepo,
	}
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingSessionService{
		CoachSvc:    coachService,
		BookingRepo: bookingRepo,
		Sessions:    booking.NewRedisSessionStore(),
		Notifier:    notificationService,
		Reminders:   reminderScheduler,
	}

	coachHandler := handlers.NewCoachHandler(coachService, bookingRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	routes.RegisterRoutes(router, coachHandler, bookingHandler)

	// Background workers.
	gccron.InitReminderWorker(notificationService)
	housekeeping := gccron.InitHousekeeping(coachRepo, bookingRepo)
	defer housekeeping.Stop()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

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

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/notify"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content and contact API for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting backend; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to process memory", "error", err)
	}

	// 5. Setup Repositories
	contactRepo := postgres.NewContactMessageRepository(dbPool)
	testimonialRepo := postgres.NewTestimonialRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	serviceRepo := postgres.NewServiceRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	timelineRepo := postgres.NewTimelineRepository(dbPool)

	// 6. Setup Notification Relay client
	notifier := notify.NewClient(cfg.RelayURL)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	contactUC := usecase.NewContactUsecase(contactRepo, notifier)
	testimonialUC := usecase.NewTestimonialUsecase(testimonialRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	serviceUC := usecase.NewServiceUsecase(serviceRepo)
	aboutUC := usecase.NewAboutUsecase(skillRepo, timelineRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		TestimonialUC: testimonialUC,
		ProjectUC:     projectUC,
		ServiceUC:     serviceUC,
		AboutUC:       aboutUC,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

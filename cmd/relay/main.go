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
	"go-portfolio-backend/internal/relay"
	"go-portfolio-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting contact-email relay", "port", cfg.RelayPort)

	sender := relay.NewResendSender(cfg.ResendAPIKey, cfg.ContactEmailFrom, cfg.ContactEmailTo)
	router := relay.NewRouter(sender)

	srv := &http.Server{
		Addr:    ":" + cfg.RelayPort,
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
	logger.Log.Info("Shutting down relay...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Relay forced to shutdown", "error", err)
	}

	logger.Log.Info("Relay exiting")
}

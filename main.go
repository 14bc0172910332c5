package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"webhook-verifier/internal/common/logging"
	"webhook-verifier/internal/config"
	"webhook-verifier/internal/server"
)

func main() {
	_ = godotenv.Load()

	logging.InitGlobalLogger()
	defer logging.MustSync()
	logger := logging.GetGlobalLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	srv := server.New(cfg, logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			logging.Field{Key: "port", Value: cfg.Port},
			logging.Field{Key: "providers", Value: len(cfg.ConfiguredProviders())},
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", err)
	}
}

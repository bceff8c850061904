package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/gp-payment-gateway/internal/api"
	"github.com/DanielPopoola/gp-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/gp-payment-gateway/internal/config"
	"github.com/DanielPopoola/gp-payment-gateway/internal/infrastructure/gpapi"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/gp-payment-gateway/internal/worker"
	"github.com/go-chi/chi/v5"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"gp_environment", cfg.GPAPI.Environment,
	)

	doc, err := api.LoadSpec(context.Background())
	if err != nil {
		logger.Error("failed to load api document", "error", err)
		os.Exit(1)
	}

	gpClient := gpapi.NewClient(cfg.GPAPI, cfg.Retry, logger)
	paymentService := services.NewPaymentService(gpClient, logger)

	h := handlers.NewHandlers(paymentService, gpClient, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	h.RegisterRoutes(router)
	if err := api.RegisterDocsRoutes(router, doc); err != nil {
		logger.Error("failed to register docs routes", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tokenRefresher := worker.NewTokenRefresher(gpClient, cfg.Worker.TokenRefreshInterval, logger)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go tokenRefresher.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

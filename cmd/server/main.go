package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"groupevents/config"
	_ "groupevents/docs"
	"groupevents/internal/adapters/auth"
	delivery "groupevents/internal/delivery/http"
	"groupevents/internal/delivery/http/controllers"
	"groupevents/internal/delivery/http/middleware"
	"groupevents/internal/repository/postgres"
	"groupevents/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Group Events Status API
// @version 1.0
// @description Derives the lifecycle status (active, in_review, done) of a group's most recent event.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	logger.Info("database connected")

	eventRepo := postgres.NewEventRepository(db)
	statusSvc := services.NewStatusService(eventRepo, serviceTimeout)
	eventSvc := services.NewEventService(eventRepo, serviceTimeout)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	requireAuth := middleware.RequireAuth(verifier, logger)

	controller := controllers.NewStatusController(logger, statusSvc, eventSvc)
	mux := delivery.NewRouter(controller, requireAuth)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", server.Addr, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}
}

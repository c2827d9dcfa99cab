package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"viang-solution-backend/config"
	"viang-solution-backend/internal/delivery/http/middleware"
	v1 "viang-solution-backend/internal/delivery/http/v1"
	"viang-solution-backend/internal/usecase"
	"viang-solution-backend/pkg/email"
	"viang-solution-backend/pkg/logger"
	"viang-solution-backend/pkg/redis"
	"viang-solution-backend/pkg/turnstile"
	"viang-solution-backend/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact relay backend", "port", cfg.Port)

	appCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// 3. Rate-limit store: Redis when configured, in-memory otherwise. The
	// memory store stays around as fallback for Redis outages.
	memStore := middleware.NewMemoryStore()
	memStore.StartSweeper(appCtx, 5*time.Minute)

	var store middleware.RateLimitStore = memStore
	var fallback middleware.RateLimitStore
	if cfg.RedisURL != "" {
		client, err := redis.New(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer client.Close()
			store = middleware.NewRedisStore(client)
			fallback = memStore
		}
	}

	contactLimiter := middleware.RateLimit(middleware.ContactRateLimitConfig(
		cfg.RateLimitContactThreshold,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		store,
		fallback,
	))

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 5. Setup Turnstile Verifier
	verifier := turnstile.New(cfg.TurnstileSecretKey)
	if !verifier.Enabled() {
		logger.Log.Warn("Turnstile secret key missing - token verification is DISABLED")
	}

	// 6. Setup UseCase
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(validate, verifier, emailService, usecase.Options{
		RequirePhone:     cfg.RequirePhone,
		SendConfirmation: cfg.SendConfirmation,
	})

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		ContactLimiter: contactLimiter,
		Config:         cfg,
		WebDir:         "./web",
	})

	// 8. Start Server
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

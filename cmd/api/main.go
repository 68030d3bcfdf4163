package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/healthkiosk/platform/internal/api/router"
	"github.com/healthkiosk/platform/internal/booking"
	appconfig "github.com/healthkiosk/platform/internal/config"
	"github.com/healthkiosk/platform/internal/http/handlers"
	"github.com/healthkiosk/platform/internal/observability/metrics"
	"github.com/healthkiosk/platform/internal/session"
	"github.com/healthkiosk/platform/pkg/logging"
)

func main() {
	// Load .env in development; ignored when absent
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting health-kiosk API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Session persistence backend
	var kv session.KV
	if cfg.UseMemoryStore {
		logger.Info("using in-memory session store")
		kv = session.NewMemoryKV()
	} else {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err, "addr", cfg.RedisAddr)
			os.Exit(1)
		}
		kv = session.NewRedisKV(client, cfg.SessionTTL)
	}

	kioskMetrics := metrics.NewKioskMetrics(nil)
	finalizer := booking.NewFinalizer(cfg.BookingWindowDays)

	// Initialize handlers
	kioskHandler := handlers.NewKioskHandler(kv, finalizer, kioskMetrics, logger,
		cfg.AnalysisDelay, cfg.BookingDelay)

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		Kiosk:              kioskHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

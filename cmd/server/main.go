package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftride/internal/booking"
	"swiftride/internal/config"
	"swiftride/internal/handlers"
	"swiftride/internal/middleware"
	"swiftride/internal/platform"
	"swiftride/internal/services"
	"swiftride/internal/session"
	"swiftride/internal/utils"
	"swiftride/pkg/cache"
	"swiftride/pkg/logger"
	"swiftride/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
		Colors: cfg.Log.Colors,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Session persistence survives restarts when redis is reachable; without
	// it sessions are memory-only and die with the process.
	var persistence session.Persistence
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, sessions will not survive restarts")
		} else {
			persistence = redisCache
			defer redisCache.Close()
		}
	}

	sessions := session.NewStore(persistence, appLogger, cfg.Session.TTL)

	client := platform.NewClient(&platform.Config{
		BaseURL: cfg.Platform.BaseURL,
		Timeout: cfg.Platform.Timeout,
	}, appLogger)
	client.SetUnauthorizedHook(sessions.PurgeToken)

	drafts := booking.NewRegistry(appLogger)

	vehicleService := services.NewVehicleService(client, appLogger)
	bookingService := services.NewBookingService(client, drafts, appLogger)
	authService := services.NewAuthService(client, sessions, appLogger)
	newsletterService := services.NewNewsletterService(client, appLogger)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))

	v1 := router.Group("/api/v1")
	routes.Setup(v1, &routes.Handlers{
		Vehicles:   handlers.NewVehicleHandler(vehicleService),
		Bookings:   handlers.NewBookingHandler(bookingService),
		Auth:       handlers.NewAuthHandler(authService),
		Newsletter: handlers.NewNewsletterHandler(newsletterService),
	}, sessions)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"name":    utils.AppName,
			"version": cfg.App.Version,
		})
	})

	// Abandoned drafts are reclaimed in the background.
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Session.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := drafts.Sweep(); removed > 0 {
					appLogger.WithField("removed", removed).Debug("Stale booking drafts reclaimed")
				}
			case <-sweepDone:
				return
			}
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		appLogger.WithField("addr", addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	close(sweepDone)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}
	appLogger.Info("Server stopped")
}

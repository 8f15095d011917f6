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
	"go.uber.org/zap"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
	"hostel-backend/utils"
)

func buildLogger() *zap.Logger {
	if utils.EnvBool("DEBUG") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("logger init failed: %v", err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	return logger
}

func buildTenantSource(logger *zap.Logger) services.TenantSource {
	baseURL := utils.EnvOrDefault("UPSTREAM_API_URL", "")
	if baseURL == "" {
		logger.Info("UPSTREAM_API_URL not set; using static sample tenant source")
		return services.StaticSampleSource{}
	}
	return services.NewLiveAPISource(baseURL, os.Getenv("UPSTREAM_API_TOKEN"), logger)
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	logger := buildLogger()
	defer logger.Sync()

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB
	if db == nil {
		logger.Fatal("config.DB is nil after ConnectDatabase()")
	}
	logger.Info("database connection established, migrations applied")

	// Snapshot repository: redis when configured, in-memory otherwise.
	var cache services.SnapshotRepository
	redisClient, err := config.ConnectRedis()
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}
	if redisClient != nil {
		cache = services.NewRedisRepository(redisClient, "hostel")
		logger.Info("redis snapshot repository enabled")
	} else {
		cache = services.NewMemoryRepository()
		logger.Info("redis not configured; using in-memory snapshot repository")
	}

	// Initialize services
	roomTypeService := services.NewRoomTypeService(db)
	tenantService := services.NewTenantService(db, buildTenantSource(logger), logger)
	paymentService := services.NewPaymentService(db)
	dashboardService := services.NewDashboardService(db, cache, logger)
	settingsService := services.NewSettingsService(db, cache, logger)

	// Initialize controllers
	roomTypeController := controllers.NewRoomTypeController(roomTypeService, dashboardService)
	tenantController := controllers.NewTenantController(tenantService, dashboardService)
	paymentController := controllers.NewPaymentController(paymentService, dashboardService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	settingsController := controllers.NewSettingsController(settingsService)

	router := routes.SetupRouter(
		roomTypeController,
		tenantController,
		paymentController,
		dashboardController,
		settingsController,
		logger,
	)

	port := utils.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

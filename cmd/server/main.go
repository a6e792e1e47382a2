package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cafe120/cafe120-backend/config"
	"github.com/cafe120/cafe120-backend/internal/app/controller"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/app/service"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/cafe120/cafe120-backend/internal/router"
	"github.com/cafe120/cafe120-backend/internal/scheduler"
	"github.com/cafe120/cafe120-backend/internal/storage"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"github.com/cafe120/cafe120-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting CAFE120 Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (bootstrap admin과 기본 카테고리 시드 포함)
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis는 refresh 토큰 블랙리스트에만 쓰므로 없어도 서버는 뜬다
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Initialize blob storage
	blobs := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	planRepo := repository.NewPlanRepository(db.GetDB())
	leadRepo := repository.NewLeadRepository(db.GetDB())
	ingredientRepo := repository.NewIngredientRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	resourceRepo := repository.NewResourceRepository(db.GetDB())
	configRepo := repository.NewConfigRepository(db.GetDB())
	aiHistoryRepo := repository.NewAIHistoryRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	planService := service.NewPlanService(planRepo, blobs)
	leadService := service.NewLeadService(leadRepo, planRepo)
	catalogService := service.NewCatalogService(ingredientRepo, categoryRepo, blobs)
	orderService := service.NewOrderService(orderRepo, ingredientRepo)
	storeService := service.NewStoreService(storeRepo)
	resourceService := service.NewResourceService(resourceRepo, blobs)
	configService := service.NewConfigService(configRepo)
	aiService := service.NewAIService(configService, aiHistoryRepo, &cfg.AI)

	// 설정 캐시 주기 갱신 스케줄러
	configScheduler := scheduler.NewConfigRefreshScheduler(configService, cfg.AI.RefreshSchedule)
	if err := configScheduler.Start(); err != nil {
		logger.Fatal("Failed to start config refresh scheduler", err)
	}
	defer configScheduler.Stop()

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	userController := controller.NewUserController(authService)
	planController := controller.NewPlanController(planService)
	leadController := controller.NewLeadController(leadService)
	catalogController := controller.NewCatalogController(catalogService)
	orderController := controller.NewOrderController(orderService)
	storeController := controller.NewStoreController(storeService)
	resourceController := controller.NewResourceController(resourceService)
	configController := controller.NewConfigController(configService)
	aiController := controller.NewAIController(aiService)
	uploadController := controller.NewUploadController(blobs)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		planController,
		leadController,
		catalogController,
		orderController,
		storeController,
		resourceController,
		configController,
		aiController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

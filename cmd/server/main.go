package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sales-crm.backend/internal/config"
	"sales-crm.backend/internal/infrastructure/repositories"
	"sales-crm.backend/internal/interfaces/http/handlers"
	"sales-crm.backend/internal/interfaces/http/middleware"
	"sales-crm.backend/internal/usecases"
	"sales-crm.backend/pkg/cache"
	"sales-crm.backend/pkg/jwt"
	"sales-crm.backend/pkg/logger"
	"sales-crm.backend/pkg/metrics"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openRedis  = cache.NewClient
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize metrics registry
	m := metrics.NewMetrics()

	// Initialize the dashboard view cache. The service still works without
	// redis, it just recomputes aggregates on every read.
	var viewCache *cache.Cache
	redisClient, err := openRedis(cfg.Redis.URL, cfg.Redis.Password)
	if err != nil {
		logger.Warn(context.Background(), "Redis unavailable, dashboard caching disabled", zap.Error(err))
	} else {
		viewCache = cache.New(redisClient, cfg.Cache.TTL, m)
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	stageRepo := repositories.NewStageRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	metricsUsecase := usecases.NewMetricsUsecase(stageRepo, dealRepo, contactRepo, viewCache)
	pipelineUsecase := usecases.NewPipelineUsecase(stageRepo, dealRepo, activityRepo, viewCache)
	dealUsecase := usecases.NewDealUsecase(dealRepo, viewCache)
	contactUsecase := usecases.NewContactUsecase(contactRepo, viewCache)
	taskUsecase := usecases.NewTaskUsecase(taskRepo)
	activityUsecase := usecases.NewActivityUsecase(activityRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	dashboardHandler := handlers.NewDashboardHandler(metricsUsecase, pipelineUsecase, taskUsecase, contactUsecase, activityUsecase)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUsecase, stageRepo)
	dealHandler := handlers.NewDealHandler(dealUsecase)
	contactHandler := handlers.NewContactHandler(contactUsecase)
	taskHandler := handlers.NewTaskHandler(taskUsecase)
	activityHandler := handlers.NewActivityHandler(activityUsecase)
	userHandler := handlers.NewUserHandler(userRepo, teamRepo)

	sessionMiddleware := middleware.SessionMiddleware(jwtService, cfg.Auth.DefaultUserID)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r, m)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		dashboardHandler:  dashboardHandler,
		pipelineHandler:   pipelineHandler,
		dealHandler:       dealHandler,
		contactHandler:    contactHandler,
		taskHandler:       taskHandler,
		activityHandler:   activityHandler,
		userHandler:       userHandler,
		sessionMiddleware: sessionMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if redisClient != nil {
			redisClient.Close()
		}
	}()

	// Start server
	log.Printf("🚀 Sales CRM Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crusaiders.backend/internal/config"
	"crusaiders.backend/internal/domain/repositories"
	"crusaiders.backend/internal/domain/validation"
	infrarepos "crusaiders.backend/internal/infrastructure/repositories"
	"crusaiders.backend/internal/infrastructure/seed"
	"crusaiders.backend/internal/interfaces/http/handlers"
	"crusaiders.backend/internal/interfaces/http/middleware"
	"crusaiders.backend/internal/usecases"
	"crusaiders.backend/pkg/logger"
	"crusaiders.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openSQLite = func(path string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	openPostgres = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
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

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the store for the configured driver
	stores, err := buildStores(cfg)
	if err != nil {
		return err
	}

	// Pre-seed team and project content
	if err := seed.Apply(context.Background(), stores.teamMembers, stores.projects); err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}

	// Initialize usecases
	submissionUsecase := usecases.NewSubmissionUsecase(
		stores.contacts,
		stores.ideas,
		stores.workshops,
		stores.newsletter,
		validation.New(),
	)
	contentUsecase := usecases.NewContentUsecase(stores.teamMembers, stores.projects)

	// Initialize handlers
	contentHandler := handlers.NewContentHandler(contentUsecase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		contentHandler:    contentHandler,
		submissionHandler: submissionHandler,
	})

	log.Printf("🚀 CrusAIders backend starting on port %s (storage: %s)", cfg.Server.Port, cfg.Storage.Driver)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// storeSet bundles one repository per entity kind, regardless of driver.
type storeSet struct {
	teamMembers repositories.TeamMemberRepository
	projects    repositories.ProjectRepository
	contacts    repositories.ContactSubmissionRepository
	ideas       repositories.IdeaSubmissionRepository
	workshops   repositories.WorkshopRegistrationRepository
	newsletter  repositories.NewsletterRepository
}

func buildStores(cfg *config.Config) (*storeSet, error) {
	var stores *storeSet

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		stores = &storeSet{
			teamMembers: infrarepos.NewMemoryTeamMemberRepository(),
			projects:    infrarepos.NewMemoryProjectRepository(),
			contacts:    infrarepos.NewMemoryContactSubmissionRepository(),
			ideas:       infrarepos.NewMemoryIdeaSubmissionRepository(),
			workshops:   infrarepos.NewMemoryWorkshopRegistrationRepository(),
			newsletter:  infrarepos.NewMemoryNewsletterRepository(),
		}
	case config.DriverSQLite:
		db, err := openSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		stores, err = gormStores(db)
		if err != nil {
			return nil, err
		}
	case config.DriverPostgres:
		db, err := openPostgres(cfg.Database.URL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		stores, err = gormStores(db)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	// Redis, when configured, holds the newsletter subscriber set.
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(context.Background(), "Redis initialized")
		stores.newsletter = infrarepos.NewRedisNewsletterRepository(redis.GetClient())
	}

	return stores, nil
}

func gormStores(db *gorm.DB) (*storeSet, error) {
	if err := infrarepos.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &storeSet{
		teamMembers: infrarepos.NewTeamMemberRepository(db),
		projects:    infrarepos.NewProjectRepository(db),
		contacts:    infrarepos.NewContactSubmissionRepository(db),
		ideas:       infrarepos.NewIdeaSubmissionRepository(db),
		workshops:   infrarepos.NewWorkshopRegistrationRepository(db),
		newsletter:  infrarepos.NewNewsletterRepository(db),
	}, nil
}

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/segfault/coursecatalog/internal/app/controllers"
	appMigrations "github.com/segfault/coursecatalog/internal/app/migrations"
	appRepos "github.com/segfault/coursecatalog/internal/app/repositories"
	appRoutes "github.com/segfault/coursecatalog/internal/app/routes"
	appServices "github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/config"
	"github.com/segfault/coursecatalog/internal/db"
	appMiddleware "github.com/segfault/coursecatalog/internal/middleware"
	pkgAuth "github.com/segfault/coursecatalog/internal/pkg/auth"
	"github.com/segfault/coursecatalog/internal/pkg/helpers"
	"github.com/segfault/coursecatalog/internal/pkg/logger"
	"github.com/segfault/coursecatalog/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	ClassService        *appServices.ClassService
	SectionService      *appServices.SectionService
	MeetingService      *appServices.MeetingService
	RoomService         *appServices.RoomService
	RequisiteService    *appServices.RequisiteService
	ReportService       *appServices.ReportService
	AuthController      *appControllers.AuthController
	ClassController     *appControllers.ClassController
	SectionController   *appControllers.SectionController
	MeetingController   *appControllers.MeetingController
	RoomController      *appControllers.RoomController
	RequisiteController *appControllers.RequisiteController
	ReportController    *appControllers.ReportController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.SectionService = appServices.NewSectionService(
		deps.Repos.SectionRepository,
		deps.Repos.ClassRepository,
		deps.Repos.RoomRepository,
	)
	deps.MeetingService = appServices.NewMeetingService(deps.Repos.MeetingRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.RequisiteService = appServices.NewRequisiteService(
		deps.Repos.RequisiteRepository,
		deps.Repos.ClassRepository,
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.SectionRepository,
		deps.Repos.RoomRepository,
		deps.Repos.MeetingRepository,
		deps.Repos.RequisiteRepository,
		deps.Repos.ClassRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.SectionController = appControllers.NewSectionController(deps.SectionService)
	deps.MeetingController = appControllers.NewMeetingController(deps.MeetingService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.RequisiteController = appControllers.NewRequisiteController(deps.RequisiteService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClassController,
		deps.SectionController,
		deps.MeetingController,
		deps.RoomController,
		deps.RequisiteController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}

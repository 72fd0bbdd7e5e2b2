package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/profilytics/backend/internal/app/controllers"
	appMigrations "github.com/profilytics/backend/internal/app/migrations"
	appRepos "github.com/profilytics/backend/internal/app/repositories"
	appRoutes "github.com/profilytics/backend/internal/app/routes"
	appServices "github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/config"
	"github.com/profilytics/backend/internal/db"
	"github.com/profilytics/backend/internal/metrics"
	appMiddleware "github.com/profilytics/backend/internal/middleware"
	pkgAuth "github.com/profilytics/backend/internal/pkg/auth"
	"github.com/profilytics/backend/internal/pkg/helpers"
	"github.com/profilytics/backend/internal/pkg/logger"
	"github.com/profilytics/backend/internal/pkg/realtime"
	"github.com/profilytics/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	ProfileService    appServices.ProfileService
	JobService        appServices.JobService
	TechEventService  appServices.TechEventService
	HackathonService  appServices.HackathonService
	ResourceService   appServices.ResourceService
	CommunityService  appServices.CommunityService
	ConnectionService appServices.ConnectionService
	MessageService    appServices.MessageService

	AuthController       *appControllers.AuthController
	ProfileController    *appControllers.ProfileController
	JobController        *appControllers.JobController
	TechEventController  *appControllers.TechEventController
	HackathonController  *appControllers.HackathonController
	ResourceController   *appControllers.ResourceController
	CommunityController  *appControllers.CommunityController
	ConnectionController *appControllers.ConnectionController
	MessageController    *appControllers.MessageController

	AuthMiddleware  *appMiddleware.AuthMiddleware
	Repos           *appRepos.Repositories
	JWTService      *pkgAuth.JWTService
	Hub             *realtime.Hub
	RealtimeHandler *realtime.Handler
	Logger          zerolog.Logger
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
	dbPool, err := db.NewPgxPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
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

	if cfg.Seed.DemoData {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// realtime hub. The hub loop is started here.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Hub = realtime.NewHub(lgr)
	go deps.Hub.Run()
	deps.RealtimeHandler = realtime.NewHandler(deps.Hub, deps.Repos.CommunityMemberRepository, lgr)

	appServices.StartTokenCleanup(context.Background(), deps.Repos.TokenRepository, time.Hour, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository, deps.Repos.ProfileDetailRepository)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository)
	deps.TechEventService = appServices.NewTechEventService(deps.Repos.TechEventRepository)
	deps.HackathonService = appServices.NewHackathonService(deps.Repos.HackathonRepository)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository)
	deps.CommunityService = appServices.NewCommunityService(deps.Repos.CommunityRepository, deps.Repos.CommunityMemberRepository)
	deps.ConnectionService = appServices.NewConnectionService(deps.Repos.ConnectionRepository, deps.Repos.ProfileRepository)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.CommunityMemberRepository, deps.Hub)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.TechEventController = appControllers.NewTechEventController(deps.TechEventService)
	deps.HackathonController = appControllers.NewHackathonController(deps.HackathonService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService)
	deps.ConnectionController = appControllers.NewConnectionController(deps.ConnectionService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)

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
	router.Use(metrics.GinMiddleware())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.JobController,
		deps.TechEventController,
		deps.HackathonController,
		deps.ResourceController,
		deps.CommunityController,
		deps.ConnectionController,
		deps.MessageController,
		deps.RealtimeHandler,
		deps.AuthMiddleware,
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

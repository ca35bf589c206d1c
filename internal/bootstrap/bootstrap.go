package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lucasv/acadplan/internal/app/controllers"
	appRepos "github.com/lucasv/acadplan/internal/app/repositories"
	appRoutes "github.com/lucasv/acadplan/internal/app/routes"
	appServices "github.com/lucasv/acadplan/internal/app/services"
	"github.com/lucasv/acadplan/internal/config"
	appMiddleware "github.com/lucasv/acadplan/internal/middleware"
	pkgAuth "github.com/lucasv/acadplan/internal/pkg/auth"
	"github.com/lucasv/acadplan/internal/pkg/logger"
	"github.com/lucasv/acadplan/internal/pkg/notify"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    *appServices.CourseService
	AuthService      *appServices.AuthService
	CourseController *appControllers.CourseController
	AuthController   *appControllers.AuthController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	JWTService       *pkgAuth.JWTService
	Snapshots        *appRepos.SnapshotRepository
	Notifier         notify.Notifier
	Logger           zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the local snapshot database.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*appRepos.SnapshotRepository, error) {
	lgr.Info().Str("path", cfg.Storage.Path).Str("slot", cfg.Storage.Slot).Msg("Opening snapshot storage...")

	snapshots, err := appRepos.NewSnapshotRepository(cfg.Storage.Path, cfg.Storage.Slot)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open snapshot storage")
		return nil, err
	}

	lgr.Info().Msg("Snapshot storage ready.")
	return snapshots, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, snapshots *appRepos.SnapshotRepository, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Snapshots: snapshots}

	deps.Notifier = notify.NewLogNotifier(lgr)

	courseService, err := appServices.NewCourseService(context.Background(), snapshots, deps.Notifier, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize course service: %w", err)
	}
	deps.CourseService = courseService

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.JWTSecret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.Auth.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.JWTService, cfg.Auth.OwnerPasswordHash)
	if !deps.AuthService.Enabled() {
		lgr.Warn().Msg("No owner password hash configured, running without authentication")
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthService.Enabled())

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)

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

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}

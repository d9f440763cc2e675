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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sekolahku/sekolahku/docs" // Import generated swagger docs
	appAuth "github.com/sekolahku/sekolahku/internal/app/auth"
	appControllers "github.com/sekolahku/sekolahku/internal/app/controllers"
	appMigrations "github.com/sekolahku/sekolahku/internal/app/migrations"
	appRepos "github.com/sekolahku/sekolahku/internal/app/repositories"
	appRoutes "github.com/sekolahku/sekolahku/internal/app/routes"
	appServices "github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/config"
	"github.com/sekolahku/sekolahku/internal/db"
	appMiddleware "github.com/sekolahku/sekolahku/internal/middleware"
	pkgAuth "github.com/sekolahku/sekolahku/internal/pkg/auth"
	"github.com/sekolahku/sekolahku/internal/pkg/filestorage"
	"github.com/sekolahku/sekolahku/internal/pkg/helpers"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
	"github.com/sekolahku/sekolahku/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService               appServices.AuthService
	StudentService            appServices.StudentService
	RecordService             appServices.RecordService
	ExtracurricularService    appServices.ExtracurricularService
	AchievementService        appServices.AchievementService
	DocumentService           appServices.DocumentService
	SubjectService            appServices.SubjectService
	AdminService              appServices.AdminService
	AuthController            *appControllers.AuthController
	StudentController         *appControllers.StudentController
	RecordController          *appControllers.RecordController
	ExtracurricularController *appControllers.ExtracurricularController
	AchievementController     *appControllers.AchievementController
	DocumentController        *appControllers.DocumentController
	SubjectController         *appControllers.SubjectController
	AdminController           *appControllers.AdminController
	AuthMiddleware            *appMiddleware.AuthMiddleware
	Repos                     *appRepos.Repositories
	JWTService                *pkgAuth.JWTService
	AuthzService              *appAuth.AuthorizationService
	Logger                    zerolog.Logger
	FileStorage               filestorage.Storage
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
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

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// setupFileStorage builds the storage backend named in the configuration.
// The folder creator is only available on the Google Drive backend.
func setupFileStorage(cfg *config.Config, lgr zerolog.Logger) (filestorage.Storage, filestorage.FolderCreator, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "google_drive":
		drive, err := filestorage.NewDriveStorage(context.Background(), cfg.Storage.DriveCredentialsFile, cfg.Storage.DriveRootFolderID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Google Drive storage: %w", err)
		}
		lgr.Info().Str("rootFolderID", cfg.Storage.DriveRootFolderID).Msg("Google Drive storage configured")
		return drive, drive, nil
	case "", "local":
		local, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Local file storage configured")
		return local, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	storage, folderCreator, err := setupFileStorage(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, err
	}
	deps.FileStorage = storage

	// Local storage references already start with "uploads/", matching the
	// static route, so the base URL must not repeat that segment.
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	fileBaseURL := strings.TrimRight(baseURL, "/")

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.StaffRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.StaffRepository, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(deps.Repos, deps.AuthzService, storage, fileBaseURL)
	deps.RecordService = appServices.NewRecordService(deps.Repos, deps.AuthzService)
	deps.ExtracurricularService = appServices.NewExtracurricularService(deps.Repos, deps.AuthzService)
	deps.AchievementService = appServices.NewAchievementService(deps.Repos, deps.AuthzService)
	deps.DocumentService = appServices.NewDocumentService(deps.Repos, deps.AuthzService, storage, fileBaseURL)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos, deps.AuthzService, storage, folderCreator, fileBaseURL)
	deps.AdminService = appServices.NewAdminService(deps.Repos, storage, fileBaseURL)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.Logger)
	deps.RecordController = appControllers.NewRecordController(deps.RecordService, deps.Logger)
	deps.ExtracurricularController = appControllers.NewExtracurricularController(deps.ExtracurricularService, deps.Logger)
	deps.AchievementController = appControllers.NewAchievementController(deps.AchievementService, deps.Logger)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService, deps.Logger)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService, deps.Logger)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.Logger)

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
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.RecordController,
		deps.ExtracurricularController,
		deps.AchievementController,
		deps.DocumentController,
		deps.SubjectController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

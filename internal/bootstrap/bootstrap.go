package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/notehub/notehub/internal/app/controllers"
	appMigrations "github.com/notehub/notehub/internal/app/migrations"
	appRepos "github.com/notehub/notehub/internal/app/repositories"
	appRoutes "github.com/notehub/notehub/internal/app/routes"
	appServices "github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/db"
	appMiddleware "github.com/notehub/notehub/internal/middleware"
	pkgAuth "github.com/notehub/notehub/internal/pkg/auth"
	"github.com/notehub/notehub/internal/pkg/blobstore"
	"github.com/notehub/notehub/internal/pkg/identity"
	"github.com/notehub/notehub/internal/pkg/logger"
	"github.com/notehub/notehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services           *appServices.Services
	TaxonomyController *appControllers.TaxonomyController
	NoteController     *appControllers.NoteController
	SessionController  *appControllers.SessionController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	Verifier           *pkgAuth.JWTVerifier
	Identity           identity.Provider
	BlobStore          blobstore.BlobStore
	Database           *db.PostgresDB
	Logger             zerolog.Logger
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
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds
// the lookup tables.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		defaults := seed.Defaults{Subjects: cfg.Seed.Subjects, Professors: cfg.Seed.Professors}
		if err := seed.CreateDefaultData(ctx, appRepos.NewTaxonomyRepository(database.Pool), defaults, lgr); err != nil {
			// seeding is best effort
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// newBlobStore selects the blob store backing note files
func newBlobStore(cfg *config.Config) (blobstore.BlobStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverLocal:
		return blobstore.NewLocalStore(cfg.Storage.LocalPath, cfg.Storage.Bucket)
	case config.StorageDriverSupabase:
		return blobstore.NewSupabaseStore(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// identityConfig falls back to the storage project credentials, since both
// APIs usually live on the same hosted project.
func identityConfig(cfg *config.Config) identity.Config {
	idCfg := identity.Config{
		BaseURL: cfg.Identity.BaseURL,
		APIKey:  cfg.Identity.APIKey,
		Timeout: cfg.Identity.Timeout,
	}
	if idCfg.BaseURL == "" {
		idCfg.BaseURL = cfg.Storage.SupabaseURL
	}
	if idCfg.APIKey == "" {
		idCfg.APIKey = cfg.Storage.SupabaseKey
	}
	return idCfg
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.BlobStore, err = newBlobStore(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize blob storage")
		return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	lgr.Info().Str("driver", cfg.Storage.Driver).Str("bucket", cfg.Storage.Bucket).Msg("Blob storage configured")

	deps.Identity = identity.NewGoTrueClient(identityConfig(cfg))

	deps.Verifier = pkgAuth.NewJWTVerifier(pkgAuth.JWTConfig{
		SecretKey: cfg.Auth.JWTSecret,
		Audience:  cfg.Auth.Audience,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.BlobStore, deps.Identity)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Verifier)

	deps.TaxonomyController = appControllers.NewTaxonomyController(deps.Services.Taxonomy)
	deps.NoteController = appControllers.NewNoteController(
		deps.Services.Submission,
		deps.Services.Listing,
		deps.Services.Detail,
		cfg.Storage.MaxUploadBytes,
	)
	deps.SessionController = appControllers.NewSessionController(deps.Services.Session)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.TaxonomyController,
		deps.NoteController,
		deps.SessionController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.Database.Ping(ctx); err != nil {
			lgr.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})

	return router
}

package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/selimd/admitflow/internal/app/controllers"
	appRepos "github.com/selimd/admitflow/internal/app/repositories"
	appRoutes "github.com/selimd/admitflow/internal/app/routes"
	appServices "github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/config"
	"github.com/selimd/admitflow/internal/db"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/middleware"
	pkgAuth "github.com/selimd/admitflow/internal/pkg/auth"
	"github.com/selimd/admitflow/internal/pkg/filestorage"
	"github.com/selimd/admitflow/internal/pkg/logger"
	"github.com/selimd/admitflow/internal/pkg/metrics"
	"github.com/selimd/admitflow/internal/pkg/oracle"
	"github.com/selimd/admitflow/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Store       docstore.Store
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	JWTService  *pkgAuth.JWTService
	FileStorage filestorage.Storage
	Metrics     *metrics.Metrics
	Database    *db.PostgresDB
	Logger      zerolog.Logger
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

// SetupStore constructs the document store named by the configuration:
// postgres for deployments, memory for development and tests.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (docstore.Store, *db.PostgresDB, error) {
	if cfg.Database.Driver == "memory" {
		lgr.Info().Msg("Using in-memory document store")
		return docstore.NewMemoryStore(), nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	store := docstore.NewPostgresStore(database.Pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.EnsureCollections(ctx, docstore.Collections()...); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Failed to prepare collections")
		return nil, nil, fmt.Errorf("failed to prepare collections: %w", err)
	}

	lgr.Info().Msg("Document store ready.")
	return store, database, nil
}

// BuildDependencies wires repositories, services, and supporting
// infrastructure over the store.
func BuildDependencies(cfg *config.Config, store docstore.Store, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Store:    store,
		Database: database,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(store)
	deps.Metrics = metrics.New()

	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	accessExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	decisionOracle := oracle.NewClient(cfg.Oracle.BaseURL, cfg.Oracle.Model, cfg.Oracle.APIToken, cfg.OracleTimeout())

	deps.Services = appServices.NewServices(deps.Repos, decisionOracle, deps.JWTService, deps.FileStorage, deps.Metrics, cfg)

	return deps, nil
}

// SeedDefaults creates the default staff account and sample eligibility
// criteria when the store is empty.
func SeedDefaults(deps *Dependencies, lgr zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed.CreateDefaultData(ctx, deps.Repos, deps.Services.Auth); err != nil {
		// Seeding failure is not fatal; the API stays usable for existing data.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	ctrl := appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.Services.Auth),
		Students:   appControllers.NewStudentController(deps.Services.Students, deps.Services.Counsellor),
		Admissions: appControllers.NewAdmissionController(deps.Services.Admissions, deps.Services.Verification, deps.Services.Shortlisting),
		Documents:  appControllers.NewDocumentController(deps.Services.Documents, deps.Services.Verification),
		Loans:      appControllers.NewLoanController(deps.Services.Loans),
		Criteria:   appControllers.NewCriteriaController(deps.Services.Criteria),
	}

	appRoutes.SetupRouter(router, ctrl, deps.JWTService)
	appRoutes.SetupSwagger(router)

	return router
}

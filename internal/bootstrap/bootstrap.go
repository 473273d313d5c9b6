package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/studentreg/internal/app/auth"
	appControllers "github.com/yigit/studentreg/internal/app/controllers"
	appMigrations "github.com/yigit/studentreg/internal/app/migrations"
	appRepos "github.com/yigit/studentreg/internal/app/repositories"
	appRoutes "github.com/yigit/studentreg/internal/app/routes"
	appServices "github.com/yigit/studentreg/internal/app/services"
	"github.com/yigit/studentreg/internal/config"
	"github.com/yigit/studentreg/internal/db"
	appMiddleware "github.com/yigit/studentreg/internal/middleware"
	pkgAuth "github.com/yigit/studentreg/internal/pkg/auth"
	"github.com/yigit/studentreg/internal/pkg/cache"
	"github.com/yigit/studentreg/internal/pkg/logger"
	"github.com/yigit/studentreg/internal/seed"
)

// Version is reported by /info
const Version = "1.0"

// DefaultConfigPath is where LoadConfigAndSetupLogger looks for the YAML file
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB                  *db.PostgresDB
	Repos               *appRepos.Repositories
	Cache               cache.Cache
	JWTService          *pkgAuth.JWTService
	Hasher              pkgAuth.PasswordHasher
	AuthzService        *appAuth.AuthorizationService
	AuthService         *appServices.AuthService
	StudentService      appServices.StudentService
	CourseService       appServices.CourseService
	ProfessorService    appServices.ProfessorService
	EnrollmentService   appServices.EnrollmentService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	ProfessorController *appControllers.ProfessorController
	HealthController    *appControllers.HealthController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
}

// Close releases the cache connection. The database is closed by its owner.
func (d *Dependencies) Close() {
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close cache")
		}
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(DefaultConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	format := strings.ToLower(cfg.Logging.Format)
	prettyLog := format == "text" || format == "pretty"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	lgr.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Failed to run database migrations")
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	lgr.Info().Msg("Database migrations completed.")

	return database, nil
}

// SetupCache connects to Redis when enabled and falls back to a no-op cache otherwise
func SetupCache(cfg *config.Config, lgr zerolog.Logger) cache.Cache {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis disabled, catalog cache off")
		return cache.NewNoopCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.CatalogCacheTTL(),
	})
	if err != nil {
		// The catalog is always readable from Postgres
		lgr.Warn().Err(err).Str("addr", cfg.GetRedisAddr()).Msg("Redis unavailable, catalog cache off")
		return cache.NewNoopCache()
	}

	lgr.Info().Str("addr", cfg.GetRedisAddr()).Dur("ttl", cfg.CatalogCacheTTL()).Msg("Redis catalog cache connected")
	return redisCache
}

// NewSeeder wires a seed.Seeder over the repositories of database
func NewSeeder(database *db.PostgresDB, lgr zerolog.Logger) *seed.Seeder {
	repos := appRepos.NewRepositories(database.Pool)
	return seed.NewSeeder(
		database,
		repos.UserRepository,
		repos.ProfessorRepository,
		repos.CourseRepository,
		pkgAuth.NewBcryptHasher(pkgAuth.BcryptCost),
		lgr.With().Str("component", "seed").Logger(),
	)
}

// AdminAccount returns the seed admin account configured in cfg
func AdminAccount(cfg *config.Config) seed.AdminAccount {
	return seed.AdminAccount{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}
}

// SeedIfConfigured runs the seeder when seed.on_startup is set
func SeedIfConfigured(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	if !cfg.Seed.OnStartup {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return NewSeeder(database, lgr).Run(ctx, AdminAccount(cfg))
}

// BuildDependencies initializes all repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if database == nil || database.Pool == nil {
		return nil, fmt.Errorf("database is not initialized")
	}

	deps := &Dependencies{
		DB:     database,
		Logger: lgr,
	}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Cache = SetupCache(cfg, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
		Audience:       cfg.JWT.Audience,
	})
	deps.Hasher = pkgAuth.NewBcryptHasher(pkgAuth.BcryptCost)
	codes := appServices.NewStudentCodeGenerator(deps.Repos.StudentRepository)

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	deps.AuthService = appServices.NewAuthService(
		database,
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		codes,
		deps.Hasher,
		deps.JWTService,
		lgr.With().Str("component", "auth").Logger(),
	)
	deps.StudentService = appServices.NewStudentService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ProfessorRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.UserRepository,
		codes,
		deps.Hasher,
		deps.Cache,
		lgr.With().Str("component", "students").Logger(),
	)
	deps.CourseService = appServices.NewCourseService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ProfessorRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.UserRepository,
		deps.Cache,
		lgr.With().Str("component", "courses").Logger(),
	)
	deps.ProfessorService = appServices.NewProfessorService(
		deps.Repos.CourseRepository,
		deps.Repos.ProfessorRepository,
		deps.Cache,
		lgr.With().Str("component", "professors").Logger(),
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
		lgr.With().Str("component", "enrollment").Logger(),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.StudentController = appControllers.NewStudentController(
		deps.StudentService,
		deps.EnrollmentService,
		deps.AuthzService,
		deps.Logger,
	)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.HealthController = appControllers.NewHealthController(database, Version)

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
	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.ProfessorController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}

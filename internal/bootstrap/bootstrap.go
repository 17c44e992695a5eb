package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/acme/hr-directory/docs" // generated swagger docs
	appControllers "github.com/acme/hr-directory/internal/app/controllers"
	appRepos "github.com/acme/hr-directory/internal/app/repositories"
	appRoutes "github.com/acme/hr-directory/internal/app/routes"
	"github.com/acme/hr-directory/internal/app/schema"
	appServices "github.com/acme/hr-directory/internal/app/services"
	"github.com/acme/hr-directory/internal/config"
	"github.com/acme/hr-directory/internal/db"
	appMiddleware "github.com/acme/hr-directory/internal/middleware"
	"github.com/acme/hr-directory/internal/pkg/logger"
	"github.com/acme/hr-directory/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EmployeeService      appServices.EmployeeService
	DepartmentService    appServices.DepartmentService
	EmployeeController   *appControllers.EmployeeController
	DepartmentController *appControllers.DepartmentController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is honored when present.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

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

// SetupDatabase establishes the database connection, (re)creates the schema
// and inserts the sample data. Any failure here is fatal: the process must
// not begin serving on a partially initialized store.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Initializing schema...")
	initializer := schema.NewInitializer(dbPool)
	if err := initializer.Run(ctx); err != nil {
		lgr.Error().Err(err).Msg("Schema initialization error")
		dbPool.Close()
		return nil, fmt.Errorf("schema initialization failed: %w", err)
	}

	if err := seed.CreateSampleData(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to insert sample data")
		dbPool.Close()
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)

	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.AccessLog())

	// CORS must run before the route handlers: one trusted browser origin,
	// credentialed requests allowed.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.EmployeeController,
		deps.DepartmentController,
	)

	return router
}

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dpackchain/package_tracking_app/cmd/docs"
	"github.com/dpackchain/package_tracking_app/internal/adapters/database/memory"
	"github.com/dpackchain/package_tracking_app/internal/adapters/database/pgsql"
	"github.com/dpackchain/package_tracking_app/internal/adapters/events"
	portsrepo "github.com/dpackchain/package_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/dpackchain/package_tracking_app/internal/core/ports/services"
	"github.com/dpackchain/package_tracking_app/internal/core/services"
	"github.com/dpackchain/package_tracking_app/internal/handlers"
	"github.com/dpackchain/package_tracking_app/internal/middleware"
	"github.com/dpackchain/package_tracking_app/internal/utils/trackingid"
	"github.com/dpackchain/package_tracking_app/pkg/config"
	"github.com/dpackchain/package_tracking_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title DPC Shipment Ledger API
// @version 1.0
// @description Authoritative shipment ledger: registration, status updates, delivery confirmation and tracking queries.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The token subject is the caller's wallet address.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Pick the shipment store: Postgres when configured, in-memory otherwise.
	var shipmentRepo portsrepo.ShipmentRepositoryFacade
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established.")

		if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
			os.Exit(1)
		}

		shipmentRepo = pgsql.NewShipmentRepository(dbPool)
	} else {
		logger.Warn("Running with the in-memory shipment store; state will not survive restarts.")
		shipmentRepo = memory.NewShipmentRepository()
	}

	// Pick the event publisher: Redis stream when configured, log otherwise.
	var publisher portssvc.EventPublisherSvc
	if cfg.RedisURL != "" {
		redisPublisher, err := events.NewRedisPublisher(cfg.RedisURL, cfg.EventStream)
		if err != nil {
			logger.Error("Failed to initialize Redis event publisher", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisPublisher.Ping(context.Background()); err != nil {
			logger.Error("Failed to reach Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
	} else {
		publisher = events.NewLogPublisher(logger)
	}

	shipmentService := services.NewShipmentServiceImpl(shipmentRepo,
		services.WithShipmentAuthorizerImpl(services.NewShipmentAuthorizer()),
		services.WithTrackingIDGeneratorImpl(trackingid.New(cfg.TrackingIDPrefix)),
		services.WithEventPublisherImpl(publisher),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	if rate, err := limiter.NewRateFromFormatted(cfg.RateLimit); err == nil {
		r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))
	} else {
		logger.Warn("Invalid RATE_LIMIT format, rate limiting disabled", slog.String("error", err.Error()))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Public routes
	public := r.Group("/")
	handlers.RegisterHealthRoutes(public)

	// API v1 routes with Auth Middleware
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	handlers.RegisterShipmentRoutes(v1, shipmentService)

	// Swagger routes (not available in production)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")
	// Open a standard sql.DB connection for migrations using the pgx stdlib
	// driver so it is compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

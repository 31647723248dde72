package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	"github.com/xylo-fin/xylo-backend/internal/core/services"
	"github.com/xylo-fin/xylo-backend/internal/handlers"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
	"github.com/xylo-fin/xylo-backend/internal/platform/config"
	"github.com/xylo-fin/xylo-backend/internal/repositories/database/pgsql"
	"github.com/xylo-fin/xylo-backend/internal/repositories/memory"
	"github.com/xylo-fin/xylo-backend/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := setupRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Seed the default chart of accounts at startup. Idempotent, so a
	// restart against an existing database inserts nothing.
	inserted, err := serviceContainer.Chart.SeedDefaultAccounts(context.Background())
	if err != nil {
		logger.Error("Failed to seed default chart of accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Default chart of accounts ready", slog.Int("inserted", inserted))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories picks the storage backend: PostgreSQL when a database
// URL is configured, the in-memory store otherwise. The returned cleanup
// func releases whatever the backend holds open.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("No database configured, using in-memory storage")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	cleanup := func() { database.ClosePgxPool(dbPool) }
	return pgsql.NewRepositoryProvider(dbPool), cleanup, nil
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

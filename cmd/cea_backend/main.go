package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/alnoorex/currency_exchange_admin/internal/adapters/database/pgsql"
	"github.com/alnoorex/currency_exchange_admin/internal/core/services"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
	"github.com/alnoorex/currency_exchange_admin/internal/handlers"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/alnoorex/currency_exchange_admin/internal/platform/config"
	"github.com/alnoorex/currency_exchange_admin/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
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

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	currencyRepo := pgsql.NewPgxCurrencyRepository(dbPool)
	noteImageRepo := pgsql.NewPgxNoteImageRepository(dbPool)
	historyRepo := pgsql.NewPgxHistoryRepository(dbPool)
	adminUserRepo := pgsql.NewPgxAdminUserRepository(dbPool)
	container := services.NewServiceContainer(currencyRepo, noteImageRepo, historyRepo, adminUserRepo, cfg)

	if err := container.Auth.BootstrapAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("Failed to bootstrap admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.SeedSampleData {
		seedSampleData(logger, container)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.LoadHTMLGlob("web/templates/*.html")

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a temporary database/sql
// connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		migrationDB.Close()
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.Close()
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// seedSampleData inserts a few starter currencies for local development.
// Skipped when any currency already exists so restarts stay idempotent.
func seedSampleData(logger *slog.Logger, container *portssvc.ServiceContainer) {
	ctx := context.Background()

	count, err := container.Currency.CountCurrencies(ctx)
	if err != nil {
		logger.Error("Failed to check currency count before seeding", slog.String("error", err.Error()))
		return
	}
	if count > 0 {
		logger.Info("Sample data seeding skipped, currencies already exist", slog.Int64("count", count))
		return
	}

	samples := []dto.CurrencyFormRequest{
		{
			Name:           "US Dollar",
			Symbol:         "USD",
			MinBuyingRate:  "3.65",
			MaxBuyingRate:  "3.67",
			MinSellingRate: "3.68",
			MaxSellingRate: "3.70",
			ChangeReason:   "Sample data seed",
		},
		{
			Name:           "Euro",
			Symbol:         "EUR",
			MinBuyingRate:  "3.95",
			MaxBuyingRate:  "3.98",
			MinSellingRate: "4.00",
			MaxSellingRate: "4.05",
			ChangeReason:   "Sample data seed",
		},
		{
			Name:           "Indian Rupee",
			Symbol:         "INR",
			MinBuyingRate:  "0.0435",
			MaxBuyingRate:  "0.0438",
			MinSellingRate: "0.0440",
			MaxSellingRate: "0.0444",
			ChangeReason:   "Sample data seed",
		},
	}

	for _, sample := range samples {
		if _, err := container.Currency.CreateCurrency(ctx, sample, ""); err != nil {
			logger.Error("Failed to seed sample currency",
				slog.String("symbol", sample.Symbol),
				slog.String("error", err.Error()),
			)
			continue
		}
		logger.Info("Seeded sample currency", slog.String("symbol", sample.Symbol))
	}
}

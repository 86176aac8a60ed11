package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	chartsHttp "migration-stats-service/internal/charts/adapters/http/fiber"
	chartsRepoPg "migration-stats-service/internal/charts/adapters/postgres"
	chartsUsecase "migration-stats-service/internal/charts/core/usecase"

	migrationsHttp "migration-stats-service/internal/migrations/adapters/http/fiber"
	migrationsRepoPg "migration-stats-service/internal/migrations/adapters/postgres"
	migrationsUsecase "migration-stats-service/internal/migrations/core/usecase"

	profileHttp "migration-stats-service/internal/profile/adapters/http/fiber"
	profileRepoPg "migration-stats-service/internal/profile/adapters/postgres"
	profileUsecase "migration-stats-service/internal/profile/core/usecase"

	"migration-stats-service/internal/logging"
	"migration-stats-service/internal/middleware"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "migration-stats-service/docs"
)

func main() {
	// Config
	logging.Init(os.Getenv("LOG_DEBUG") == "true", os.Getenv("LOG_HUMAN") == "true")
	log := logging.L()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal().Msg("POSTGRES_DSN is not set")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping postgres")
	}

	// Adapter-level DB wrappers
	chartsDB := chartsRepoPg.NewSQLDB(db)
	migrationsDB := migrationsRepoPg.NewSQLDB(db)
	profileDB := profileRepoPg.NewSQLDB(db)

	// Repositories
	migrationSource := chartsRepoPg.NewMigrationSource(chartsDB)
	migrationRepository := migrationsRepoPg.NewMigrationRepository(migrationsDB)
	profileRepository := profileRepoPg.NewProfileRepository(profileDB)

	// Usecases
	getChartUC := chartsUsecase.NewGetChartUseCase(migrationSource)
	listMigrationsUC := migrationsUsecase.NewListMigrationsUseCase(migrationRepository)
	resolveProfileUC := profileUsecase.NewResolveProfileUseCase(profileRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Use(middleware.RequestLogger())

	// Dashboard routes are admin-only; the resolved profile travels in
	// request locals, never in a shared cache.
	requireAdmin := profileHttp.RequireAdmin(resolveProfileUC)

	migrationHandler := migrationsHttp.NewMigrationHandler(listMigrationsUC)
	app.Get("/migrations", requireAdmin, migrationHandler.ListMigrations)

	chartHandler := chartsHttp.NewChartHandler(getChartUC)
	app.Get("/charts/:kind", requireAdmin, chartHandler.GetChart)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

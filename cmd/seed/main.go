package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/Freeeeeet/route_order_bot/internal/app"
	"github.com/Freeeeeet/route_order_bot/internal/migrations"
	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository"
	"github.com/Freeeeeet/route_order_bot/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// seed заполняет справочники машин и маршрутов значениями по умолчанию
func main() {
	_ = godotenv.Load(".env")

	dsn := flag.String("dsn", os.Getenv("DB_DSN"), "postgres DSN (default $DB_DSN)")
	flag.Parse()
	if *dsn == "" {
		log.Fatal("DB_DSN is required but not set")
	}

	logger := app.NewLogger(os.Getenv("ENV"))
	defer logger.Sync()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, *dsn)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	_ = migrator.Close()

	catalogs := []struct {
		service *service.CatalogService
		names   []string
	}{
		{service.NewCatalogService(repository.NewCarRepository(pool), logger), model.DefaultCars},
		{service.NewCatalogService(repository.NewRouteRepository(pool), logger), model.DefaultRoutes},
	}
	for _, c := range catalogs {
		added, err := c.service.Seed(ctx, c.names)
		if err != nil {
			logger.Fatal("Seed failed", zap.Error(err))
		}
		logger.Info("Catalog seeded", zap.Int("added", added), zap.Int("total", len(c.names)))
	}
}

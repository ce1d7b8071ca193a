package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/app"
	"github.com/Freeeeeet/route_order_bot/internal/config"
	"github.com/Freeeeeet/route_order_bot/internal/controller"
	"github.com/Freeeeeet/route_order_bot/internal/dialogue"
	"github.com/Freeeeeet/route_order_bot/internal/migrations"
	"github.com/Freeeeeet/route_order_bot/internal/repository"
	"github.com/Freeeeeet/route_order_bot/internal/service"
	"github.com/Freeeeeet/route_order_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting route order bot",
		"environment", cfg.Environment,
		"session_backend", cfg.SessionBackend,
		"webhook", cfg.UseWebhook())

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	if err := migrate(ctx, pool, logger); err != nil {
		return err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	orderRepo := repository.NewOrderRepository(pool, logger)
	carRepo := repository.NewCarRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	// Сервисы
	userService := service.NewUserService(userRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	carService := service.NewCatalogService(carRepo, logger)
	routeService := service.NewCatalogService(routeRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)

	settings, err := settingsService.EnsureAdmin(ctx, cfg.AdminID)
	if err != nil {
		return fmt.Errorf("admin settings: %w", err)
	}
	logger.Info("Admin configured", zap.Int64("admin_id", settings.AdminID))

	store, closeStore, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if sweeper, ok := store.(session.Sweeper); ok && cfg.SessionTTL > 0 {
		scheduler := app.NewScheduler(sweeper, cfg.SessionTTL, logger)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	var opts []bot.Option
	if cfg.WebhookSecret != "" {
		opts = append(opts, bot.WithWebhookSecretToken(cfg.WebhookSecret))
	}
	botInstance, err := bot.New(cfg.TelegramToken, opts...)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	engine := dialogue.NewEngine(dialogue.Deps{
		Sessions:  store,
		Users:     userService,
		Orders:    orderService,
		Cars:      carService,
		Routes:    routeService,
		Settings:  settingsService,
		Messenger: controller.NewMessenger(botInstance),
		Logger:    logger,
		Location:  cfg.Location(),
	})

	ctrl := controller.NewBotController(botInstance, engine, session.NewSerializer(), logger)
	if err := ctrl.RegisterHandlers(ctx); err != nil {
		// без меню команд бот работает, команды можно вводить вручную
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	if cfg.UseWebhook() {
		return runWebhook(ctx, cfg, ctrl, pool, logger)
	}
	return runPolling(ctx, cfg, ctrl, pool, logger)
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Run(ctx)
}

func runWebhook(ctx context.Context, cfg *config.Config, ctrl *controller.BotController, pool *pgxpool.Pool, logger *zap.Logger) error {
	handler, err := ctrl.StartWebhook(ctx, cfg.WebhookURL, cfg.WebhookSecret)
	if err != nil {
		return err
	}

	srv := app.NewHTTPServer(cfg.HTTPAddr, cfg.WebhookPath, handler, pool, cfg.Environment, logger)
	errCh := srv.Start()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	ctrl.Shutdown(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serveErr = errors.Join(serveErr, err)
	}
	return serveErr
}

func runPolling(ctx context.Context, cfg *config.Config, ctrl *controller.BotController, pool *pgxpool.Pool, logger *zap.Logger) error {
	// в режиме polling HTTP нужен только для /healthz
	srv := app.NewHTTPServer(cfg.HTTPAddr, cfg.WebhookPath, nil, pool, cfg.Environment, logger)
	errCh := srv.Start()
	go func() {
		if err := <-errCh; err != nil {
			logger.Error("Health server failed", zap.Error(err))
		}
	}()

	err := ctrl.StartPolling(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("Health server shutdown", zap.Error(shutdownErr))
	}
	return err
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/config"
	"github.com/Freeeeeet/route_order_bot/internal/session"
	"github.com/redis/go-redis/v9"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// newSessionStore хранилище диалогов по SESSION_BACKEND
func newSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case config.SessionRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("Sessions stored in redis", zap.String("addr", cfg.RedisAddr))
		return session.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil

	case config.SessionBolt:
		db, err := bolt.Open(cfg.BoltPath, 0600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt %s: %w", cfg.BoltPath, err)
		}
		store, err := session.NewBoltStore(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("Sessions stored in bolt", zap.String("path", cfg.BoltPath))
		return store, func() { _ = db.Close() }, nil

	default:
		logger.Info("Sessions stored in memory")
		return session.NewMemoryStore(), func() {}, nil
	}
}

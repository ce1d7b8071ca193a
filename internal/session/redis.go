package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:%d"

// RedisStore хранит состояния в Redis в виде JSON
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // 0 - без истечения
}

// NewRedisStore создаёт хранилище поверх клиента Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, telegramID int64) (conversation.State, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return conversation.Idle(), false, nil
		}
		return conversation.Idle(), false, fmt.Errorf("redis get session: %w", err)
	}

	var st conversation.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return conversation.Idle(), false, fmt.Errorf("decode session: %w", err)
	}
	return st, true, nil
}

func (s *RedisStore) Set(ctx context.Context, telegramID int64, state conversation.State) error {
	if state.IsIdle() {
		return s.Clear(ctx, telegramID)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(telegramID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, telegramID int64) error {
	if err := s.client.Del(ctx, redisKey(telegramID)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

func redisKey(telegramID int64) string {
	return fmt.Sprintf(redisKeyPrefix, telegramID)
}

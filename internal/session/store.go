package session

import (
	"context"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
)

// Store хранит состояние диалога каждого пользователя.
// Get возвращает found=false если состояния нет.
type Store interface {
	Get(ctx context.Context, telegramID int64) (conversation.State, bool, error)
	Set(ctx context.Context, telegramID int64, state conversation.State) error
	Clear(ctx context.Context, telegramID int64) error
}

// Sweeper хранилище без собственного TTL, устаревшие состояния удаляются снаружи
type Sweeper interface {
	Sweep(ctx context.Context, before time.Time) (int, error)
}

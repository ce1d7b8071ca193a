package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	*base.Repository
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{Repository: base.NewRepository(pool)}
}

// GetOrCreate возвращает пользователя по Telegram ID, создавая его при первом обращении.
// Данные существующего пользователя не обновляются.
func (r *UserRepository) GetOrCreate(ctx context.Context, telegramID int64, username, fullName string) (*model.User, bool, error) {
	query := `
		INSERT INTO users (telegram_id, username, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (telegram_id) DO NOTHING
		RETURNING id, telegram_id, username, full_name, created_at
	`

	var user model.User
	err := r.QueryRow(ctx, query, telegramID, username, fullName).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Username,
		&user.FullName,
		&user.CreatedAt,
	)
	if err == nil {
		return &user, true, nil
	}
	if !base.IsNotFound(err) {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	// Пользователь уже существует
	existing, err := r.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("user %d vanished after conflict", telegramID)
	}
	return existing, false, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `
		SELECT id, telegram_id, username, full_name, created_at
		FROM users
		WHERE telegram_id = $1
	`

	var user model.User
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Username,
		&user.FullName,
		&user.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}

	return &user, nil
}

// Count количество зарегистрированных пользователей
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.Repository.Count(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

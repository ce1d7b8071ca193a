package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository настройки бота, хранится одна строка
type SettingsRepository struct {
	*base.Repository
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{Repository: base.NewRepository(pool)}
}

// Current возвращает настройки или nil если админ не задан
func (r *SettingsRepository) Current(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.QueryRow(ctx, `SELECT admin_id, updated_at FROM bot_settings WHERE id = 1`).Scan(&s.AdminID, &s.UpdatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bot settings: %w", err)
	}
	return &s, nil
}

// SetAdmin задаёт Telegram ID администратора
func (r *SettingsRepository) SetAdmin(ctx context.Context, adminID int64) error {
	query := `
		INSERT INTO bot_settings (id, admin_id, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET admin_id = EXCLUDED.admin_id, updated_at = NOW()
	`
	if _, err := r.ExecAffected(ctx, query, adminID); err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	return nil
}

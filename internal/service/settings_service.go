package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository"
	"go.uber.org/zap"
)

// ErrNoAdminConfigured админ не задан ни в окружении, ни в базе
var ErrNoAdminConfigured = errors.New("admin is not configured: set ADMIN_ID or fill bot_settings")

type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Current текущие настройки, nil если не заданы
func (s *SettingsService) Current(ctx context.Context) (*model.Settings, error) {
	return s.settingsRepo.Current(ctx)
}

// EnsureAdmin проверяет при старте, что админ задан.
// Если adminID из окружения не нулевой, он записывается в базу.
func (s *SettingsService) EnsureAdmin(ctx context.Context, adminID int64) (*model.Settings, error) {
	if adminID != 0 {
		if err := s.settingsRepo.SetAdmin(ctx, adminID); err != nil {
			return nil, err
		}
		s.logger.Info("Admin set from environment", zap.Int64("admin_id", adminID))
	}

	settings, err := s.settingsRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if settings == nil || settings.AdminID == 0 {
		return nil, ErrNoAdminConfigured
	}
	return settings, nil
}

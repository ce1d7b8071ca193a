package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetOrCreate регистрирует пользователя при первом /start
func (s *UserService) GetOrCreate(ctx context.Context, telegramID int64, username, fullName string) (*model.User, bool, error) {
	user, created, err := s.userRepo.GetOrCreate(ctx, telegramID, username, fullName)
	if err != nil {
		return nil, false, fmt.Errorf("get or create user: %w", err)
	}

	if created {
		s.logger.Info("New user registered",
			zap.Int64("user_id", user.ID),
			zap.Int64("telegram_id", telegramID),
			zap.String("full_name", fullName),
		)
	}

	return user, created, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

// Count количество пользователей
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

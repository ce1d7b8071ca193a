package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo *repository.OrderRepository
	logger    *zap.Logger
}

func NewOrderService(orderRepo *repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create сохраняет подтверждённый заказ
func (s *OrderService) Create(ctx context.Context, order *model.Order) error {
	if order.UserID == 0 {
		return fmt.Errorf("create order: user is required")
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return err
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.String("direction", order.Direction),
		zap.String("date", order.Date.Format("2006-01-02")),
	)
	return nil
}

// Count общее количество заказов
func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.orderRepo.Count(ctx)
}

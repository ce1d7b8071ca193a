package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type OrderRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewOrderRepository(pool *pgxpool.Pool, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create сохраняет заказ, заполняя ID и CreatedAt
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (user_id, direction, date, phone, trip_type, car, address, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		order.UserID,
		order.Direction,
		order.Date,
		order.Phone,
		string(order.TripType),
		order.Car,
		order.Address,
		order.Comment,
	).Scan(&order.ID, &order.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert order into DB",
			zap.Int64("user_id", order.UserID),
			zap.String("direction", order.Direction),
			zap.Error(err))
		return fmt.Errorf("create order: %w", err)
	}

	r.logger.Info("Order inserted successfully",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID))

	return nil
}

// Count общее количество заказов
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.Repository.Count(ctx, `SELECT COUNT(*) FROM orders`)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

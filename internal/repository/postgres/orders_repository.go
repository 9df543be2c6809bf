package postgres

import (
	"context"
	"fmt"
	"shopreco/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) GetCompletedOrders(ctx context.Context, userID uint) ([]domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Orders
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("order_status = ?", domain.OrderStatusCompleted).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find completed orders: %w", err)
	}

	return orders, nil
}

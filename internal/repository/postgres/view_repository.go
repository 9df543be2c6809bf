package postgres

import (
	"context"
	"fmt"
	"shopreco/domain"

	"gorm.io/gorm"
)

type ViewRepository struct {
	DB *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{
		DB: db,
	}
}

func (r *ViewRepository) GetTopViewed(ctx context.Context, userID uint, limit int) ([]domain.ProductView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var views []domain.ProductView
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("view_count DESC").
		Limit(limit).
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find product views: %w", err)
	}

	return views, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"shopreco/business/reco"
	"shopreco/domain"
	"time"

	"gorm.io/gorm"
)

type RecoEventRepository struct {
	DB *gorm.DB
}

var _ reco.EventRepository = (*RecoEventRepository)(nil)

func NewRecoEventRepository(db *gorm.DB) *RecoEventRepository {
	return &RecoEventRepository{DB: db}
}

func (r *RecoEventRepository) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save recommendation event: %w", err)
	}

	return nil
}

// AttachClick records a click on the user's most recent served event.
// First click wins: a conditional update keeps a concurrent or repeated
// click from overwriting the stored product. No matching event is a no-op,
// clicks can arrive after their event was pruned.
func (r *RecoEventRepository) AttachClick(ctx context.Context, userID uint, experiment string, productID uint64, clickedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var event domain.RecommendationEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("experiment = ?", experiment).
		Order("created_at DESC").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find recommendation event: %w", err)
	}

	if event.ClickedProductID != nil {
		return nil
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.RecommendationEvent{}).
		Where("id = ?", event.ID).
		Where("clicked_product_id IS NULL").
		Updates(map[string]interface{}{
			"clicked_product_id": productID,
			"clicked_at":         clickedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to attach click: %w", result.Error)
	}

	// RowsAffected == 0 means another click got there first; that click wins.
	return nil
}

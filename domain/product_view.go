package domain

import "time"

// ProductView is one row of a user's view history, aggregated per product.
// Written by the view-event collector; the recommendation engine only reads it.
type ProductView struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index:idx_product_views_user" json:"user_id"`
	ProductID    uint64    `gorm:"column:product_id;not null" json:"product_id"`
	ViewCount    int       `gorm:"column:view_count;default:1" json:"view_count"`
	LastViewedAt time.Time `gorm:"column:last_viewed_at" json:"last_viewed_at"`
}

func (ProductView) TableName() string {
	return "product_views"
}

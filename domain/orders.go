package domain

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

type Orders struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserID      int       `gorm:"column:user_id" json:"user_id"`
	ProductID   int       `gorm:"column:product_id" json:"product_id"`
	Quantity    int       `gorm:"column:quantity" json:"quantity"`
	PriceEach   float64   `gorm:"column:price_each" json:"price_each"`
	Subtotal    float64   `gorm:"column:subtotal" json:"subtotal"`
	OrderStatus string    `gorm:"column:order_status" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Orders) TableName() string {
	return "orders"
}

package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_skuid   BIGINT,
//     product_name    TEXT,
//     category_id     BIGINT,
//     product_category TEXT,
//     price           NUMERIC,
//     rating          NUMERIC,
//     status          TEXT DEFAULT 'active',
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	ProductSKUID    uint64    `gorm:"column:product_skuid"`
	ProductName     string    `gorm:"column:product_name;type:text"`
	CategoryID      uint64    `gorm:"column:category_id;default:0"`
	ProductCategory string    `gorm:"column:product_category;type:text"`
	Price           float64   `gorm:"column:price;type:numeric"`
	Rating          float64   `gorm:"column:rating;type:numeric;default:0"`
	Status          string    `gorm:"column:status;type:text;default:active"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

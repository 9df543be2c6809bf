package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Experiment is one named A/B test with its traffic allocation.
// Allocation maps variant name -> percentage of traffic; percentages may sum
// to less than 100, the remainder implicitly falls through to control.
type Experiment struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Name       string            `gorm:"column:name;unique;not null" json:"name"`
	Active     bool              `gorm:"column:active;default:true" json:"active"`
	Allocation datatypes.JSONMap `gorm:"column:allocation;type:jsonb" json:"allocation"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Experiment) TableName() string {
	return "experiments"
}

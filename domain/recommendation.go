package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Candidate generator source tags.
const (
	SourceCollaborative = "collaborative"
	SourceCrossSell     = "cross_sell"
	SourceTrending      = "trending"
)

// Recommendation request types.
const (
	RecoTypeGeneral      = "general"
	RecoTypeCrossSell    = "cross_sell"
	RecoTypeTrending     = "trending"
	RecoTypeSimilarUsers = "similar_users"
)

// Candidate is one product suggestion produced by a single generator.
type Candidate struct {
	ProductID uint64  `json:"product_id"`
	Score     float64 `json:"score"`
	Source    string  `json:"source"`
}

type ProductSummary struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
}

type RecommendationMetadata struct {
	TotalConsidered    int            `json:"total_considered"`
	SourceCounts       map[string]int `json:"source_counts"`
	ABTestGroup        string         `json:"ab_test_group"`
	ReRankApplied      bool           `json:"re_rank_applied"`
	RecommendationType string         `json:"recommendation_type"`
}

type RecommendationResult struct {
	Recommendations []ProductSummary       `json:"recommendations"`
	Metadata        RecommendationMetadata `json:"metadata"`
}

// RecommendationEvent is the audit record written for every served result.
// ClickedProductID/ClickedAt are attached at most once by click attribution.
type RecommendationEvent struct {
	ID               string            `gorm:"primaryKey;column:id" json:"id"`
	UserID           uint              `gorm:"column:user_id;not null;index:idx_reco_events_user" json:"user_id"`
	Experiment       string            `gorm:"column:experiment;not null" json:"experiment"`
	Variant          string            `gorm:"column:variant;not null" json:"variant"`
	ServedProductIDs datatypes.JSON    `gorm:"column:served_product_ids;type:jsonb" json:"served_product_ids"`
	Context          datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	ClickedProductID *uint64           `gorm:"column:clicked_product_id" json:"clicked_product_id,omitempty"`
	ClickedAt        *time.Time        `gorm:"column:clicked_at" json:"clicked_at,omitempty"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}

package reco

import (
	"context"
	"time"

	"shopreco/domain"
)

// Request is a validated recommendation request flowing through the engine.
type Request struct {
	UserID          uint
	ViewedProductID uint64
	Type            string
	Limit           int
}

// Source is one candidate generator. Implementations must treat their own
// backend failures as errors for the fan-out to swallow; an empty result is
// not an error.
type Source interface {
	Name() string
	Generate(ctx context.Context, req Request, maxCandidates int) ([]domain.Candidate, error)
}

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindActiveByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
	GetActiveProductsByCategory(ctx context.Context, category string, excludeID uint64, limit int) ([]domain.Product, error)
	GetRecentActiveProducts(ctx context.Context, limit int) ([]domain.Product, error)
}

type OrderHistoryRepository interface {
	GetCompletedOrders(ctx context.Context, userID uint) ([]domain.Orders, error)
}

// SimilarityRepository is the opaque similar-user lookup, fed offline.
type SimilarityRepository interface {
	GetSimilarUsers(ctx context.Context, userID uint, n int) ([]uint, error)
}

type ViewHistoryRepository interface {
	GetTopViewed(ctx context.Context, userID uint, limit int) ([]domain.ProductView, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, bool, error)
}

type ExperimentRepository interface {
	GetByName(ctx context.Context, name string) (domain.Experiment, bool, error)
}

// ExperimentAdminRepository adds the write side used by the admin endpoints.
type ExperimentAdminRepository interface {
	ExperimentRepository
	Upsert(ctx context.Context, exp domain.Experiment) error
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.RecommendationEvent) error
	AttachClick(ctx context.Context, userID uint, experiment string, productID uint64, clickedAt time.Time) error
}

// TrendingCache is an optional short-TTL cache in front of the trending read.
type TrendingCache interface {
	GetTrending(ctx context.Context, limit int) ([]uint64, error)
	SetTrending(ctx context.Context, ids []uint64) error
}

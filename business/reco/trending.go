package reco

import (
	"context"
	"fmt"

	"shopreco/domain"
	"shopreco/pkg/logger"
)

// TrendingSource surfaces recently added active products, newest first.
// Recency stands in for order-volume trending until aggregation lands.
// It is the guaranteed fallback: it only goes empty when the catalog does.
type TrendingSource struct {
	catalogRepo CatalogRepository
	cache       TrendingCache
}

func NewTrendingSource(catalogRepo CatalogRepository, cache TrendingCache) *TrendingSource {
	return &TrendingSource{catalogRepo: catalogRepo, cache: cache}
}

func (s *TrendingSource) Name() string {
	return domain.SourceTrending
}

func (s *TrendingSource) Generate(
	ctx context.Context,
	req Request,
	maxCandidates int,
) ([]domain.Candidate, error) {

	if maxCandidates <= 0 {
		return nil, nil
	}

	if s.cache != nil {
		ids, err := s.cache.GetTrending(ctx, maxCandidates)
		if err == nil && len(ids) > 0 {
			return candidatesFromRankedIDs(ids), nil
		}
		if err != nil {
			logger.Warn("trending cache read failed", "error", err)
		}
	}

	rows, err := s.catalogRepo.GetRecentActiveProducts(ctx, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("load recent products: %w", err)
	}

	ids := make([]uint64, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ID)
	}

	if s.cache != nil && len(ids) > 0 {
		if err := s.cache.SetTrending(ctx, ids); err != nil {
			logger.Warn("trending cache write failed", "error", err)
		}
	}

	return candidatesFromRankedIDs(ids), nil
}

// candidatesFromRankedIDs assigns descending positional scores so the ranked
// order survives any score-based handling downstream.
func candidatesFromRankedIDs(ids []uint64) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(ids))
	for i, id := range ids {
		out = append(out, domain.Candidate{
			ProductID: id,
			Score:     float64(len(ids) - i),
			Source:    domain.SourceTrending,
		})
	}
	return out
}

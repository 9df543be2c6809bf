package reco

import (
	"context"
	"fmt"

	"shopreco/domain"
)

// CrossSellSource suggests complements to the product the user is looking at:
// active products from the same category, best-rated first. Without a viewed
// product there is nothing to cross-sell.
type CrossSellSource struct {
	catalogRepo CatalogRepository
}

func NewCrossSellSource(catalogRepo CatalogRepository) *CrossSellSource {
	return &CrossSellSource{catalogRepo: catalogRepo}
}

func (s *CrossSellSource) Name() string {
	return domain.SourceCrossSell
}

func (s *CrossSellSource) Generate(
	ctx context.Context,
	req Request,
	maxCandidates int,
) ([]domain.Candidate, error) {

	if maxCandidates <= 0 || req.ViewedProductID == 0 {
		return []domain.Candidate{}, nil
	}

	viewed, err := s.catalogRepo.FindByID(ctx, req.ViewedProductID)
	if err != nil {
		return nil, fmt.Errorf("load viewed product: %w", err)
	}

	rows, err := s.catalogRepo.GetActiveProductsByCategory(
		ctx, viewed.ProductCategory, viewed.ID, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("load category products: %w", err)
	}

	out := make([]domain.Candidate, 0, len(rows))
	for _, p := range rows {
		out = append(out, domain.Candidate{
			ProductID: p.ID,
			Score:     p.Rating,
			Source:    domain.SourceCrossSell,
		})
	}

	return out, nil
}

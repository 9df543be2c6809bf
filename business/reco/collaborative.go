package reco

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"shopreco/domain"

	"golang.org/x/sync/errgroup"
)

// CollaborativeSource recommends what similar shoppers bought: similar users
// come from the offline similarity store, their completed-order products are
// ranked by how many of those users bought them.
type CollaborativeSource struct {
	similarityRepo SimilarityRepository
	ordersRepo     OrderHistoryRepository
	catalogRepo    CatalogRepository
	similarUsers   int
}

func NewCollaborativeSource(
	similarityRepo SimilarityRepository,
	ordersRepo OrderHistoryRepository,
	catalogRepo CatalogRepository,
	similarUsers int,
) *CollaborativeSource {
	if similarUsers <= 0 {
		similarUsers = 10
	}
	return &CollaborativeSource{
		similarityRepo: similarityRepo,
		ordersRepo:     ordersRepo,
		catalogRepo:    catalogRepo,
		similarUsers:   similarUsers,
	}
}

func (s *CollaborativeSource) Name() string {
	return domain.SourceCollaborative
}

func (s *CollaborativeSource) Generate(
	ctx context.Context,
	req Request,
	maxCandidates int,
) ([]domain.Candidate, error) {

	if maxCandidates <= 0 {
		return nil, nil
	}

	similar, err := s.similarityRepo.GetSimilarUsers(ctx, req.UserID, s.similarUsers)
	if err != nil {
		return nil, fmt.Errorf("load similar users: %w", err)
	}
	if len(similar) == 0 {
		// nobody similar yet, let the other sources carry the request
		return []domain.Candidate{}, nil
	}

	// frequency of each product across the similar users' completed orders
	var (
		mu   sync.Mutex
		freq = make(map[uint64]float64)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, uid := range similar {
		g.Go(func() error {
			orders, err := s.ordersRepo.GetCompletedOrders(gctx, uid)
			if err != nil {
				// one unreadable neighbor should not empty the whole source
				return nil
			}

			mu.Lock()
			for _, o := range orders {
				freq[uint64(o.ProductID)]++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(freq) == 0 {
		return []domain.Candidate{}, nil
	}

	ranked := make([]domain.Candidate, 0, len(freq))
	for pid, count := range freq {
		ranked = append(ranked, domain.Candidate{
			ProductID: pid,
			Score:     count,
			Source:    domain.SourceCollaborative,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	// over-fetch before the active filter so deactivated products
	// don't shrink the list below maxCandidates unnecessarily
	probe := maxCandidates * 2
	if probe > len(ranked) {
		probe = len(ranked)
	}
	ids := make([]uint64, 0, probe)
	for _, c := range ranked[:probe] {
		ids = append(ids, c.ProductID)
	}

	active, err := s.catalogRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("filter active products: %w", err)
	}
	activeSet := make(map[uint64]bool, len(active))
	for _, p := range active {
		activeSet[p.ID] = true
	}

	out := make([]domain.Candidate, 0, maxCandidates)
	for _, c := range ranked[:probe] {
		if !activeSet[c.ProductID] {
			continue
		}
		out = append(out, c)
		if len(out) >= maxCandidates {
			break
		}
	}

	return out, nil
}

package reco

import (
	"context"

	"shopreco/pkg/logger"
)

// UserProfile is the bounded behavior summary sent to the external scorer.
type UserProfile struct {
	UserID       uint     `json:"user_id"`
	PurchasedIDs []uint64 `json:"purchased_ids"`
	ViewedIDs    []uint64 `json:"viewed_ids"`
}

// Reranker reorders a candidate id set using an external scoring signal.
// Implementations return the ids in preferred order; the engine sanitizes
// the response, so a sloppy scorer cannot inject or lose candidates.
type Reranker interface {
	Rerank(ctx context.Context, profile UserProfile, candidateIDs []uint64) ([]uint64, error)
}

// runRerank invokes the scorer under its own short deadline. Any failure
// keeps the original order and reports applied=false; re-ranking is never
// allowed to block or break the response.
func (s *Service) runRerank(
	ctx context.Context,
	profile UserProfile,
	candidateIDs []uint64,
) ([]uint64, bool) {

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RerankTimeout)
	defer cancel()

	order, err := s.reranker.Rerank(ctx, profile, candidateIDs)
	if err != nil {
		logger.Warn("rerank failed, keeping source order",
			"user_id", profile.UserID,
			"candidates", len(candidateIDs),
			"error", err,
		)
		RerankOutcomesTotal.WithLabelValues("failed").Inc()
		return candidateIDs, false
	}

	RerankOutcomesTotal.WithLabelValues("applied").Inc()
	return sanitizeRerankOrder(order, candidateIDs), true
}

// sanitizeRerankOrder drops ids the scorer invented and appends, in their
// original positions, any candidate ids it left out. The result is always a
// permutation of candidateIDs.
func sanitizeRerankOrder(order []uint64, candidateIDs []uint64) []uint64 {
	known := make(map[uint64]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		known[id] = true
	}

	out := make([]uint64, 0, len(candidateIDs))
	placed := make(map[uint64]bool, len(candidateIDs))
	for _, id := range order {
		if !known[id] || placed[id] {
			continue
		}
		placed[id] = true
		out = append(out, id)
	}

	for _, id := range candidateIDs {
		if !placed[id] {
			out = append(out, id)
		}
	}

	return out
}

package reco

import (
	"context"
	"fmt"
	"sort"
	"time"

	"shopreco/domain"
	"shopreco/pkg/logger"
)

type Config struct {
	ExperimentName   string
	GeneratorTimeout time.Duration
	RerankEnabled    bool
	RerankTimeout    time.Duration
	DefaultLimit     int
	MaxLimit         int
	SimilarUserCount int

	// per-source fetch size is limit * CandidateFactor, so dedup and
	// ownership filtering still leave enough to fill the page
	CandidateFactor int
}

func DefaultConfig() Config {
	return Config{
		ExperimentName:   "reco_ranking_v1",
		GeneratorTimeout: 400 * time.Millisecond,
		RerankTimeout:    200 * time.Millisecond,
		DefaultLimit:     10,
		MaxLimit:         50,
		SimilarUserCount: 10,
		CandidateFactor:  3,
	}
}

// Service orchestrates a recommendation request: resolve the experiment
// variant, fan the generators out, optionally re-rank, merge, log, respond.
type Service struct {
	cfg            Config
	userRepo       UserRepository
	catalogRepo    CatalogRepository
	ordersRepo     OrderHistoryRepository
	viewRepo       ViewHistoryRepository
	experimentRepo ExperimentRepository
	eventRepo      EventRepository
	reranker       Reranker

	collaborative Source
	crossSell     Source
	trending      Source
}

func NewService(
	cfg Config,
	userRepo UserRepository,
	catalogRepo CatalogRepository,
	ordersRepo OrderHistoryRepository,
	viewRepo ViewHistoryRepository,
	similarityRepo SimilarityRepository,
	experimentRepo ExperimentRepository,
	eventRepo EventRepository,
	reranker Reranker,
	trendingCache TrendingCache,
) *Service {
	def := DefaultConfig()
	if cfg.ExperimentName == "" {
		cfg.ExperimentName = def.ExperimentName
	}
	if cfg.GeneratorTimeout <= 0 {
		cfg.GeneratorTimeout = def.GeneratorTimeout
	}
	if cfg.RerankTimeout <= 0 {
		cfg.RerankTimeout = def.RerankTimeout
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.SimilarUserCount <= 0 {
		cfg.SimilarUserCount = def.SimilarUserCount
	}
	if cfg.CandidateFactor <= 0 {
		cfg.CandidateFactor = def.CandidateFactor
	}

	return &Service{
		cfg:            cfg,
		userRepo:       userRepo,
		catalogRepo:    catalogRepo,
		ordersRepo:     ordersRepo,
		viewRepo:       viewRepo,
		experimentRepo: experimentRepo,
		eventRepo:      eventRepo,
		reranker:       reranker,
		collaborative:  NewCollaborativeSource(similarityRepo, ordersRepo, catalogRepo, cfg.SimilarUserCount),
		crossSell:      NewCrossSellSource(catalogRepo),
		trending:       NewTrendingSource(catalogRepo, trendingCache),
	}
}

// Recommend produces a deduplicated, ranked product list for one user.
// Only input errors come back as errors; any source-side failure degrades
// toward the trending-only / natural-order fallback.
func (s *Service) Recommend(ctx context.Context, req Request) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if req.UserID == 0 {
		return nil, ErrUserRequired
	}
	if req.Type == "" {
		req.Type = domain.RecoTypeGeneral
	}
	switch req.Type {
	case domain.RecoTypeGeneral, domain.RecoTypeCrossSell, domain.RecoTypeTrending, domain.RecoTypeSimilarUsers:
	default:
		return nil, ErrInvalidType
	}
	if req.Limit <= 0 {
		req.Limit = s.cfg.DefaultLimit
	}
	if req.Limit > s.cfg.MaxLimit {
		req.Limit = s.cfg.MaxLimit
	}

	if _, ok, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	} else if !ok {
		return nil, ErrUnknownUser
	}

	variant := s.resolveVariant(ctx, req.UserID)
	owned := s.ownedProducts(ctx, req.UserID)

	lists := s.runSources(ctx, s.sourcesForType(req.Type), req, req.Limit*s.cfg.CandidateFactor)

	ordered := orderBySourcePriority(lists, variant)
	uniq := dedupeCandidates(ordered)
	ids := candidateIDs(uniq)

	var rerankOrder []uint64
	rerankApplied := false
	if s.cfg.RerankEnabled && s.reranker != nil && variant == VariantPersonalized && len(ids) > 0 {
		order, applied := s.runRerank(ctx, s.buildProfile(ctx, req.UserID, owned), ids)
		if applied {
			rerankOrder = order
			rerankApplied = true
		}
	}

	picked, counts := pickTop(uniq, rerankOrder, owned, req.Limit)

	result := &domain.RecommendationResult{
		Recommendations: s.hydrate(ctx, picked),
		Metadata: domain.RecommendationMetadata{
			TotalConsidered:    len(uniq),
			SourceCounts:       counts,
			ABTestGroup:        variant,
			ReRankApplied:      rerankApplied,
			RecommendationType: req.Type,
		},
	}

	s.logServed(req, variant, picked, counts, len(uniq), rerankApplied)

	logger.Debug("recommendation served",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", req.UserID,
		"type", req.Type,
		"variant", variant,
		"served", len(picked),
		"considered", len(uniq),
		"re_rank_applied", rerankApplied,
	)

	return result, nil
}

// sourcesForType keeps the declared generator order fixed; merge priority is
// the variant's business, not the fan-out's.
func (s *Service) sourcesForType(recoType string) []Source {
	switch recoType {
	case domain.RecoTypeSimilarUsers:
		return []Source{s.collaborative}
	case domain.RecoTypeCrossSell:
		return []Source{s.crossSell}
	case domain.RecoTypeTrending:
		return []Source{s.trending}
	default:
		return []Source{s.collaborative, s.crossSell, s.trending}
	}
}

// resolveVariant never fails: a missing or broken experiment config means
// everyone lands in control.
func (s *Service) resolveVariant(ctx context.Context, userID uint) string {
	exp, ok, err := s.experimentRepo.GetByName(ctx, s.cfg.ExperimentName)
	if err != nil || !ok {
		if err != nil {
			logger.Warn("experiment config unavailable, defaulting to control",
				"experiment", s.cfg.ExperimentName,
				"error", err,
			)
		}
		return VariantControl
	}
	return AssignVariant(exp, userID)
}

// ownedProducts loads the set of products the user already bought. An
// unreadable order history degrades to an empty set rather than failing the
// request.
func (s *Service) ownedProducts(ctx context.Context, userID uint) map[uint64]bool {
	orders, err := s.ordersRepo.GetCompletedOrders(ctx, userID)
	if err != nil {
		logger.Warn("order history unavailable, ownership filter disabled",
			"user_id", userID,
			"error", err,
		)
		return map[uint64]bool{}
	}

	owned := make(map[uint64]bool, len(orders))
	for _, o := range orders {
		owned[uint64(o.ProductID)] = true
	}
	return owned
}

// buildProfile assembles the bounded behavior summary for the re-ranker.
func (s *Service) buildProfile(ctx context.Context, userID uint, owned map[uint64]bool) UserProfile {
	purchased := make([]uint64, 0, len(owned))
	for id := range owned {
		purchased = append(purchased, id)
	}
	sort.Slice(purchased, func(i, j int) bool { return purchased[i] < purchased[j] })

	profile := UserProfile{UserID: userID, PurchasedIDs: purchased}

	views, err := s.viewRepo.GetTopViewed(ctx, userID, 20)
	if err != nil {
		logger.Warn("view history unavailable for rerank profile",
			"user_id", userID,
			"error", err,
		)
		return profile
	}
	for _, v := range views {
		profile.ViewedIDs = append(profile.ViewedIDs, v.ProductID)
	}

	return profile
}

// hydrate turns the picked candidates into product summaries, preserving
// order. If the catalog read fails the response keeps its shape with id-only
// summaries.
func (s *Service) hydrate(ctx context.Context, picked []domain.Candidate) []domain.ProductSummary {
	out := make([]domain.ProductSummary, 0, len(picked))
	if len(picked) == 0 {
		return out
	}

	products, err := s.catalogRepo.FindActiveByIDs(ctx, candidateIDs(picked))
	if err != nil {
		logger.Warn("catalog hydration failed, returning id-only summaries", "error", err)
		for _, c := range picked {
			out = append(out, domain.ProductSummary{ProductID: c.ProductID})
		}
		return out
	}

	byID := make(map[uint64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, c := range picked {
		p, ok := byID[c.ProductID]
		if !ok {
			out = append(out, domain.ProductSummary{ProductID: c.ProductID})
			continue
		}
		out = append(out, domain.ProductSummary{
			ProductID:   p.ID,
			ProductName: p.ProductName,
			Category:    p.ProductCategory,
			Price:       p.Price,
			Rating:      p.Rating,
		})
	}

	return out
}

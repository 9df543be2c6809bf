package reco

import (
	"context"
	"errors"
	"testing"

	"shopreco/domain"
)

func completed(userID uint, productIDs ...int) []domain.Orders {
	out := make([]domain.Orders, 0, len(productIDs))
	for _, pid := range productIDs {
		out = append(out, domain.Orders{
			UserID:      int(userID),
			ProductID:   pid,
			OrderStatus: domain.OrderStatusCompleted,
		})
	}
	return out
}

func TestCollaborativeRanksByPurchaseFrequency(t *testing.T) {
	f := newFixture()
	f.similarity.similar = []uint{100, 101, 102}
	f.orders.completed = map[uint][]domain.Orders{
		100: completed(100, 1, 2),
		101: completed(101, 2, 3),
		102: completed(102, 2),
	}

	src := NewCollaborativeSource(f.similarity, f.orders, f.catalog, 10)
	got, err := src.Generate(context.Background(), Request{UserID: 42}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// product 2 bought by all three, 1 and 3 by one each (ties break by id)
	want := []uint64{2, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ProductID != id {
			t.Errorf("position %d: expected %d, got %d", i, id, got[i].ProductID)
		}
		if got[i].Source != domain.SourceCollaborative {
			t.Errorf("position %d: wrong source %q", i, got[i].Source)
		}
	}
}

func TestCollaborativeDropsInactiveProducts(t *testing.T) {
	f := newFixture()
	f.catalog.products[9] = domain.Product{ID: 9, Status: domain.ProductStatusInactive}
	f.similarity.similar = []uint{100}
	f.orders.completed = map[uint][]domain.Orders{
		100: completed(100, 9, 1),
	}

	src := NewCollaborativeSource(f.similarity, f.orders, f.catalog, 10)
	got, err := src.Generate(context.Background(), Request{UserID: 42}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range got {
		if c.ProductID == 9 {
			t.Fatal("inactive product leaked into candidates")
		}
	}
}

func TestCollaborativeNoSimilarUsers(t *testing.T) {
	f := newFixture()
	src := NewCollaborativeSource(f.similarity, f.orders, f.catalog, 10)

	got, err := src.Generate(context.Background(), Request{UserID: 42}, 10)
	if err != nil {
		t.Fatalf("no similar users is not an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestCollaborativeSimilarityFailure(t *testing.T) {
	f := newFixture()
	f.similarity.err = errors.New("store down")
	src := NewCollaborativeSource(f.similarity, f.orders, f.catalog, 10)

	if _, err := src.Generate(context.Background(), Request{UserID: 42}, 10); err == nil {
		t.Fatal("expected an error when the similarity store is down")
	}
}

func TestCrossSellSameCategoryOnly(t *testing.T) {
	f := newFixture()
	src := NewCrossSellSource(f.catalog)

	got, err := src.Generate(context.Background(), Request{UserID: 42, ViewedProductID: 1}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected candidates from the viewed category")
	}
	for _, c := range got {
		if c.ProductID == 1 {
			t.Error("viewed product must not cross-sell itself")
		}
		if f.catalog.products[c.ProductID].ProductCategory != "garden" {
			t.Errorf("product %d is outside the viewed category", c.ProductID)
		}
	}
}

func TestCrossSellWithoutViewedProduct(t *testing.T) {
	f := newFixture()
	src := NewCrossSellSource(f.catalog)

	got, err := src.Generate(context.Background(), Request{UserID: 42}, 10)
	if err != nil {
		t.Fatalf("no viewed product is not an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestTrendingPrefersCache(t *testing.T) {
	f := newFixture()
	f.cache.getErr = nil
	f.cache.ids = []uint64{2, 4}
	src := NewTrendingSource(f.catalog, f.cache)

	got, err := src.Generate(context.Background(), Request{UserID: 42}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ProductID != 2 || got[1].ProductID != 4 {
		t.Fatalf("expected cached ranking [2 4], got %v", got)
	}
	if f.cache.setCalls != 0 {
		t.Error("cache hit must not rewrite the cache")
	}
}

func TestTrendingFallsBackToCatalogAndWarmsCache(t *testing.T) {
	f := newFixture()
	f.cache.getErr = errors.New("cache down")
	src := NewTrendingSource(f.catalog, f.cache)

	got, err := src.Generate(context.Background(), Request{UserID: 42}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []uint64{5, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ProductID != id {
			t.Errorf("position %d: expected %d, got %d", i, id, got[i].ProductID)
		}
	}
	// positional scores keep the ranking stable downstream
	if got[0].Score <= got[1].Score {
		t.Error("scores must descend with rank")
	}
	if f.cache.setCalls != 1 {
		t.Errorf("expected one cache refresh, got %d", f.cache.setCalls)
	}
}

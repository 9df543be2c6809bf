package reco

import (
	"testing"
)

func TestSanitizeRerankOrder(t *testing.T) {
	candidates := []uint64{1, 2, 3, 4}

	cases := []struct {
		name  string
		order []uint64
		want  []uint64
	}{
		{"identity", []uint64{1, 2, 3, 4}, []uint64{1, 2, 3, 4}},
		{"reversed", []uint64{4, 3, 2, 1}, []uint64{4, 3, 2, 1}},
		{"foreign id dropped", []uint64{99, 3, 1, 2, 4}, []uint64{3, 1, 2, 4}},
		{"missing ids appended in original order", []uint64{3}, []uint64{3, 1, 2, 4}},
		{"duplicate kept once", []uint64{2, 2, 4}, []uint64{2, 4, 1, 3}},
		{"empty order keeps everything", nil, []uint64{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeRerankOrder(tc.order, candidates)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestSanitizeRerankOrderAlwaysPermutation(t *testing.T) {
	candidates := []uint64{10, 20, 30}
	got := sanitizeRerankOrder([]uint64{30, 999, 30, 10}, candidates)

	if len(got) != len(candidates) {
		t.Fatalf("expected %d ids, got %v", len(candidates), got)
	}
	seen := map[uint64]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %d in %v", id, got)
		}
		seen[id] = true
	}
	for _, id := range candidates {
		if !seen[id] {
			t.Fatalf("candidate %d missing from %v", id, got)
		}
	}
}

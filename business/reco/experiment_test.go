package reco

import (
	"testing"

	"shopreco/domain"

	"gorm.io/datatypes"
)

func activeExperiment(allocation datatypes.JSONMap) domain.Experiment {
	return domain.Experiment{
		Name:       "reco_ranking_v1",
		Active:     true,
		Allocation: allocation,
	}
}

func TestAssignVariantDeterministic(t *testing.T) {
	exp := activeExperiment(datatypes.JSONMap{
		"personalized": 40,
		"trending":     30,
	})

	for userID := uint(1); userID <= 200; userID++ {
		first := AssignVariant(exp, userID)
		for i := 0; i < 5; i++ {
			if got := AssignVariant(exp, userID); got != first {
				t.Fatalf("user %d flapped between %q and %q", userID, first, got)
			}
		}
	}
}

func TestAssignVariantCoversAllArms(t *testing.T) {
	exp := activeExperiment(datatypes.JSONMap{
		"personalized": 40,
		"trending":     30,
	})

	seen := map[string]int{}
	for userID := uint(1); userID <= 2000; userID++ {
		seen[AssignVariant(exp, userID)]++
	}

	// 30% of traffic is unclaimed and must fall through to control
	for _, variant := range []string{VariantPersonalized, VariantTrending, VariantControl} {
		if seen[variant] == 0 {
			t.Errorf("variant %q got no traffic: %v", variant, seen)
		}
	}
}

func TestAssignVariantFullAllocationHasNoControl(t *testing.T) {
	exp := activeExperiment(datatypes.JSONMap{
		"personalized": 100,
	})

	for userID := uint(1); userID <= 500; userID++ {
		if got := AssignVariant(exp, userID); got != VariantPersonalized {
			t.Fatalf("user %d: expected personalized, got %q", userID, got)
		}
	}
}

func TestAssignVariantMisconfiguration(t *testing.T) {
	cases := []struct {
		name string
		exp  domain.Experiment
	}{
		{"inactive", domain.Experiment{Name: "x", Active: false, Allocation: datatypes.JSONMap{"personalized": 50}}},
		{"empty allocation", activeExperiment(datatypes.JSONMap{})},
		{"overfull allocation", activeExperiment(datatypes.JSONMap{"personalized": 70, "trending": 70})},
		{"negative percentage", activeExperiment(datatypes.JSONMap{"personalized": -10, "trending": 50})},
		{"non numeric percentage", activeExperiment(datatypes.JSONMap{"personalized": "lots"})},
		{"missing name", domain.Experiment{Active: true, Allocation: datatypes.JSONMap{"personalized": 50}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for userID := uint(1); userID <= 100; userID++ {
				if got := AssignVariant(tc.exp, userID); got != VariantControl {
					t.Fatalf("user %d: expected control, got %q", userID, got)
				}
			}
		})
	}
}

func TestAssignVariantJSONNumericTypes(t *testing.T) {
	// jsonb columns round-trip percentages as float64
	exp := activeExperiment(datatypes.JSONMap{
		"personalized": float64(100),
	})

	if got := AssignVariant(exp, 7); got != VariantPersonalized {
		t.Fatalf("expected personalized, got %q", got)
	}
}

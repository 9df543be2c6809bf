package reco

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"

	"shopreco/domain"
)

const (
	VariantControl      = "control"
	VariantPersonalized = "personalized"
	VariantTrending     = "trending"
)

// AssignVariant buckets a user into one arm of an experiment.
//
// The user hashes into [0,100) and the allocation map is walked in
// lexicographic variant order, accumulating percentages. Whatever traffic the
// allocation does not claim falls through to control, as does any
// misconfiguration (inactive experiment, empty or overfull allocation).
// Same configuration + same user always yields the same variant.
func AssignVariant(exp domain.Experiment, userID uint) string {
	if !exp.Active || exp.Name == "" || len(exp.Allocation) == 0 {
		return VariantControl
	}

	names := make([]string, 0, len(exp.Allocation))
	for name := range exp.Allocation {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	pcts := make([]int, len(names))
	for i, name := range names {
		pct, ok := allocationPct(exp.Allocation[name])
		if !ok || pct < 0 {
			return VariantControl
		}
		pcts[i] = pct
		total += pct
	}
	if total > 100 {
		return VariantControl
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", exp.Name, userID)
	bucket := int(h.Sum32() % 100)

	acc := 0
	for i, name := range names {
		acc += pcts[i]
		if bucket < acc {
			return name
		}
	}

	return VariantControl
}

// allocationPct tolerates the numeric types a jsonb column round-trips as.
func allocationPct(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

package reco

import (
	"shopreco/domain"
)

// orderBySourcePriority rearranges the generator lists for merging.
// personalized leads with collaborative, the trending arm leads with
// trending, control keeps the declared generator order.
func orderBySourcePriority(lists []CandidateList, variant string) []CandidateList {
	var lead string
	switch variant {
	case VariantPersonalized:
		lead = domain.SourceCollaborative
	case VariantTrending:
		lead = domain.SourceTrending
	default:
		return lists
	}

	ordered := make([]CandidateList, 0, len(lists))
	for _, l := range lists {
		if l.Source == lead {
			ordered = append(ordered, l)
		}
	}
	for _, l := range lists {
		if l.Source != lead {
			ordered = append(ordered, l)
		}
	}
	return ordered
}

// dedupeCandidates concatenates the lists and keeps the first occurrence of
// every product id, so a duplicate is attributed to the highest-priority
// source that emitted it.
func dedupeCandidates(lists []CandidateList) []domain.Candidate {
	total := 0
	for _, l := range lists {
		total += len(l.Items)
	}

	seen := make(map[uint64]bool, total)
	out := make([]domain.Candidate, 0, total)
	for _, l := range lists {
		for _, c := range l.Items {
			if seen[c.ProductID] {
				continue
			}
			seen[c.ProductID] = true
			out = append(out, c)
		}
	}
	return out
}

func candidateIDs(candidates []domain.Candidate) []uint64 {
	ids := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ProductID)
	}
	return ids
}

// pickTop walks the deduplicated candidates (in re-ranked order when one is
// given), drops products the user already owns and truncates at limit. The
// returned counts record how many survivors each source contributed.
func pickTop(
	candidates []domain.Candidate,
	rerankOrder []uint64,
	owned map[uint64]bool,
	limit int,
) ([]domain.Candidate, map[string]int) {

	counts := map[string]int{
		domain.SourceCollaborative: 0,
		domain.SourceCrossSell:     0,
		domain.SourceTrending:      0,
	}

	sequence := candidates
	if rerankOrder != nil {
		byID := make(map[uint64]domain.Candidate, len(candidates))
		for _, c := range candidates {
			byID[c.ProductID] = c
		}
		sequence = make([]domain.Candidate, 0, len(rerankOrder))
		for _, id := range rerankOrder {
			if c, ok := byID[id]; ok {
				sequence = append(sequence, c)
			}
		}
	}

	out := make([]domain.Candidate, 0, limit)
	for _, c := range sequence {
		if owned[c.ProductID] {
			continue
		}
		out = append(out, c)
		counts[c.Source]++
		if len(out) >= limit {
			break
		}
	}

	return out, counts
}

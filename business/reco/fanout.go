package reco

import (
	"context"

	"shopreco/domain"
	"shopreco/pkg/logger"
)

// CandidateList is the output of one generator, tagged with its source.
type CandidateList struct {
	Source string
	Items  []domain.Candidate
}

// runSources fans all generators out concurrently under one shared deadline.
// Every source owns a fixed slot in the returned slice, so merge order never
// depends on completion order. A source that errors or misses the deadline
// contributes an empty list; runSources itself never fails and never waits
// past the deadline.
func (s *Service) runSources(
	ctx context.Context,
	sources []Source,
	req Request,
	maxCandidates int,
) []CandidateList {

	lists := make([]CandidateList, len(sources))
	for i, src := range sources {
		lists[i] = CandidateList{Source: src.Name()}
	}
	if len(sources) == 0 {
		return lists
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.GeneratorTimeout)
	defer cancel()

	type slotResult struct {
		idx   int
		items []domain.Candidate
	}

	// buffered so abandoned sources can still finish and get collected
	results := make(chan slotResult, len(sources))

	for i, src := range sources {
		go func() {
			items, err := src.Generate(ctx, req, maxCandidates)
			if err != nil {
				logger.Warn("candidate source failed",
					"source", src.Name(),
					"user_id", req.UserID,
					"error", err,
				)
				SourceFailuresTotal.WithLabelValues(src.Name()).Inc()
				results <- slotResult{idx: i}
				return
			}
			results <- slotResult{idx: i, items: items}
		}()
	}

	for collected := 0; collected < len(sources); collected++ {
		select {
		case r := <-results:
			lists[r.idx].Items = r.items
		case <-ctx.Done():
			logger.Warn("candidate fan-out deadline reached",
				"user_id", req.UserID,
				"collected", collected,
				"sources", len(sources),
			)
			return lists
		}
	}

	return lists
}

package reco

import (
	"context"
	"encoding/json"
	"time"

	"shopreco/domain"
	"shopreco/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// logServed writes the audit record for a served result. The write happens
// off the request path so a slow event store never delays the response; a
// failed write is logged, retry is the event store collaborator's job.
func (s *Service) logServed(
	req Request,
	variant string,
	served []domain.Candidate,
	counts map[string]int,
	totalConsidered int,
	rerankApplied bool,
) {
	ids := candidateIDs(served)
	raw, err := json.Marshal(ids)
	if err != nil {
		logger.Error("failed to marshal served product ids", "error", err)
		return
	}

	event := domain.RecommendationEvent{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		Experiment:       s.cfg.ExperimentName,
		Variant:          variant,
		ServedProductIDs: raw,
		Context: datatypes.JSONMap{
			"recommendation_type": req.Type,
			"total_considered":    totalConsidered,
			"source_counts":       counts,
			"re_rank_applied":     rerankApplied,
		},
		CreatedAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
			logger.Error("failed to save recommendation event",
				"event_id", event.ID,
				"user_id", event.UserID,
				"error", err,
			)
		}
	}()
}

// LogClick attributes a click to the most recent served recommendation for
// the user. First click wins; repeating the same click is a no-op.
func (s *Service) LogClick(ctx context.Context, userID uint, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if userID == 0 {
		return ErrUserRequired
	}
	if productID == 0 {
		return ErrProductRequired
	}

	return s.eventRepo.AttachClick(ctx, userID, s.cfg.ExperimentName, productID, time.Now())
}

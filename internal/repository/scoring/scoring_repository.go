package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"shopreco/business/reco"
)

type ScoringConfig struct {
	ScoringUrl string
}

// ScoringRepository calls the external ranking model over HTTP. The caller
// bounds every call with a context deadline; this client carries no timeout
// of its own.
type ScoringRepository struct {
	scoringConfig ScoringConfig
	client        *http.Client
}

var _ reco.Reranker = (*ScoringRepository)(nil)

func NewScoringRepository(cfg ScoringConfig) *ScoringRepository {
	return &ScoringRepository{
		scoringConfig: cfg,
		client:        &http.Client{},
	}
}

type rerankRequest struct {
	Profile      reco.UserProfile `json:"profile"`
	CandidateIDs []uint64         `json:"candidate_ids"`
}

type rerankResponse struct {
	RankedIDs []uint64 `json:"ranked_ids"`
}

func (r *ScoringRepository) Rerank(ctx context.Context, profile reco.UserProfile, candidateIDs []uint64) ([]uint64, error) {
	payload, err := json.Marshal(rerankRequest{
		Profile:      profile,
		CandidateIDs: candidateIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rerank request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.scoringConfig.ScoringUrl, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build rerank request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call scoring service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring service returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring response: %w", err)
	}

	var scored rerankResponse
	if err := json.Unmarshal(body, &scored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring response: %w", err)
	}

	return scored.RankedIDs, nil
}

package redis

import (
	"context"
	"fmt"
	"strconv"

	"shopreco/business/reco"

	"github.com/redis/go-redis/v9"
)

// SimilarityRepository reads the precomputed user-to-user similarity sets.
// An offline job maintains one sorted set per user, scored by similarity:
// "similar:users:{user_id}".
type SimilarityRepository struct {
	client *redis.Client
}

var _ reco.SimilarityRepository = (*SimilarityRepository)(nil)

func NewSimilarityRepository(client *redis.Client) *SimilarityRepository {
	return &SimilarityRepository{
		client: client,
	}
}

func (r *SimilarityRepository) GetSimilarUsers(ctx context.Context, userID uint, n int) ([]uint, error) {
	key := fmt.Sprintf("similar:users:%d", userID)

	members, err := r.client.ZRevRange(ctx, key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get similar users from Redis: %w", err)
	}

	users := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			// skip malformed members instead of failing the whole lookup
			continue
		}
		users = append(users, uint(id))
	}

	return users, nil
}

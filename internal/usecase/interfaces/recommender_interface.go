package interfaces

import (
	"context"
	"time"
)

// IRecommender abstracts the hosted language model behind the benefit assistant.
type IRecommender interface {
	Recommend(ctx context.Context, situation string) (string, error)
}

// IRecommendationCache keeps previous assistant answers. A miss is ("", false, nil).
type IRecommendationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"beneficios_inss/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrEmptySituation           = errors.New("description is required")
	ErrRecommenderNotConfigured = errors.New("recommender not configured")
)

const recommendationKeyPrefix = "recommendation:"

// IRecommendationUseCase backs the benefit assistant.
type IRecommendationUseCase interface {
	Recommend(ctx context.Context, situation string) (string, error)
}

type RecommendationUseCase struct {
	recommender interfaces.IRecommender
	cache       interfaces.IRecommendationCache
	ttl         time.Duration
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

// NewRecommendationUseCase wires the model client. cache may be nil.
func NewRecommendationUseCase(recommender interfaces.IRecommender, cache interfaces.IRecommendationCache, ttl time.Duration) *RecommendationUseCase {
	return &RecommendationUseCase{recommender: recommender, cache: cache, ttl: ttl}
}

func (u *RecommendationUseCase) Recommend(ctx context.Context, situation string) (string, error) {
	situation = strings.TrimSpace(situation)
	if situation == "" {
		return "", ErrEmptySituation
	}
	if u.recommender == nil {
		return "", ErrRecommenderNotConfigured
	}

	key := recommendationKey(situation)
	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("[assistant][usecase] cache read failed")
		} else if ok {
			log.Debug().Str("key", key).Msg("[assistant][usecase] cache hit")
			return cached, nil
		}
	}

	answer, err := u.recommender.Recommend(ctx, situation)
	if err != nil {
		log.Error().Err(err).Msg("[assistant][usecase] recommender failed")
		return "", err
	}

	if u.cache != nil && u.ttl > 0 {
		if err := u.cache.Set(ctx, key, answer, u.ttl); err != nil {
			log.Warn().Err(err).Msg("[assistant][usecase] cache write failed")
		}
	}
	return answer, nil
}

func recommendationKey(situation string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(situation)))
	return recommendationKeyPrefix + hex.EncodeToString(sum[:])
}

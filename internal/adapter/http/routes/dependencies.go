package routes

import (
	"context"
	"fmt"
	"strings"

	"beneficios_inss/internal/adapter/http/middleware"
	"beneficios_inss/internal/adapter/persistence/repository"
	"beneficios_inss/internal/domain/documents"
	"beneficios_inss/internal/infrastructure/ai"
	"beneficios_inss/internal/infrastructure/auth"
	"beneficios_inss/internal/infrastructure/cache"
	"beneficios_inss/internal/infrastructure/config"
	"beneficios_inss/internal/infrastructure/database"
	"beneficios_inss/internal/infrastructure/metrics"
	"beneficios_inss/internal/infrastructure/storage"
	"beneficios_inss/internal/usecase"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// multipartOverhead is added to the document ceiling to size whole request bodies.
const multipartOverhead = 1 << 20

// Dependencies is everything the router needs. Run builds it from Config;
// tests fill it with mocks.
type Dependencies struct {
	Auth            usecase.IAuthUseCase
	Profiles        usecase.IUserProfileUseCase
	Requests        usecase.IBenefitRequestUseCase
	Recommendations usecase.IRecommendationUseCase
	Tokens          middleware.TokenParser
	Metrics         *metrics.Metrics
	MaxUploadBody   int64
	RateLimitRPS    float64
	RateLimitBurst  int
}

func buildDependencies(ctx context.Context, cfg config.Config) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Dependencies, func(), error) {
		cleanup()
		return Dependencies{}, nil, err
	}

	var requestRepo interfaces.IBenefitRequestRepository
	var profileRepo interfaces.IUserProfileRepository
	switch strings.ToLower(cfg.StoreBackend) {
	case config.StoreFirestore:
		client, err := database.ConnectFirestore(ctx, cfg.GCPProjectID)
		if err != nil {
			return fail(fmt.Errorf("firestore: %w", err))
		}
		closers = append(closers, func() { _ = client.Close() })
		requestRepo = repository.NewBenefitRequestFirestoreRepository(client)
		profileRepo = repository.NewUserProfileFirestoreRepository(client)
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return fail(fmt.Errorf("dynamodb: %w", err))
		}
		requestRepo = repository.NewBenefitRequestDynamoRepository(ddb, cfg.RequestsTable, cfg.ProtocolsTable)
		profileRepo = repository.NewUserProfileDynamoRepository(ddb, cfg.UsersTable)
	}
	log.Info().Str("backend", cfg.StoreBackend).Msg("[routes] request store ready")

	var docStore interfaces.IDocumentStore
	switch strings.ToLower(cfg.DocumentStore) {
	case config.DocumentsGCS:
		client, err := storage.ConnectGCS(ctx)
		if err != nil {
			return fail(fmt.Errorf("gcs: %w", err))
		}
		closers = append(closers, func() { _ = client.Close() })
		docStore = storage.NewGCSDocumentStore(client, cfg.DocumentsBucket)
	default:
		docStore = storage.NewInlineDocumentStore()
	}
	log.Info().Str("store", cfg.DocumentStore).Msg("[routes] document store ready")

	var recommender interfaces.IRecommender
	if cfg.RecommendationsEnabled() {
		vr, err := ai.NewVertexRecommender(ctx, cfg.GCPProjectID, cfg.VertexAIRegion, cfg.VertexAIModel)
		if err != nil {
			log.Warn().Err(err).Msg("[routes] benefit assistant disabled")
		} else {
			closers = append(closers, func() { _ = vr.Close() })
			recommender = vr
		}
	}

	var recommendationCache interfaces.IRecommendationCache
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("[routes] recommendation cache disabled")
		} else {
			closers = append(closers, func() { _ = client.Close() })
			recommendationCache = cache.NewRedisRecommendationCache(client)
		}
	}

	m := metrics.New()
	jwt := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTTL)
	uploader := usecase.NewDocumentUploader(documents.NewValidator(cfg.MaxDocumentBytes, cfg.AllowedDocumentTypes), docStore).
		WithInlineBudget(cfg.InlineRecordBudget())
	profiles := usecase.NewUserProfileUseCase(profileRepo)

	deps := Dependencies{
		Auth: usecase.NewAuthUseCase(profiles, jwt, usecase.CaseworkerAccount{
			Email:        cfg.CaseworkerEmail,
			PasswordHash: cfg.CaseworkerPasswordHash,
		}),
		Profiles:        profiles,
		Requests:        usecase.NewBenefitRequestUseCase(requestRepo, profileRepo, uploader, m),
		Recommendations: usecase.NewRecommendationUseCase(recommender, recommendationCache, cfg.RecommendationCacheTTL),
		Tokens:          jwt,
		Metrics:         m,
		MaxUploadBody:   cfg.MaxDocumentBytes*documents.MaxPerCall + multipartOverhead,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
	}
	return deps, cleanup, nil
}

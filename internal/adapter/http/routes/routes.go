package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "beneficios_inss/docs" // generated by swag init
	"beneficios_inss/internal/adapter/http/handlers"
	"beneficios_inss/internal/adapter/http/middleware"
	"beneficios_inss/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run wires the dependencies from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	deps, cleanup, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("[routes] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("[routes] shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers middlewares, swagger, metrics and the /v1 API.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	getRoutes(router, deps)
	return router
}

func getRoutes(router *gin.Engine, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Auth)
	profileHandler := handlers.NewProfileHandler(deps.Profiles)
	requestHandler := handlers.NewBenefitRequestHandler(deps.Requests, deps.MaxUploadBody)
	adminHandler := handlers.NewAdminHandler(deps.Requests)
	catalogHandler := handlers.NewCatalogHandler()
	assistantHandler := handlers.NewAssistantHandler(deps.Recommendations)

	limiter := middleware.NewRateLimiter(deps.RateLimitRPS, deps.RateLimitBurst)
	authenticated := middleware.Auth(deps.Tokens)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, limiter, authHandler)
	addCatalogRoutes(v1, catalogHandler)
	addAssistantRoutes(v1, limiter, assistantHandler)

	// Rotas autenticadas
	addCitizenRoutes(v1, authenticated, profileHandler, requestHandler)
	addAdminRoutes(v1, authenticated, adminHandler)
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.Logging())
	router.Use(middleware.Recover())
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	if deps.MaxUploadBody > 0 {
		router.MaxMultipartMemory = deps.MaxUploadBody
	}
}

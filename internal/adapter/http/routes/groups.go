package routes

import (
	"net/http"

	"beneficios_inss/internal/adapter/http/handlers"
	"beneficios_inss/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathMe        = "/me"
	PathRequests  = "/requests"
	PathAdmin     = "/admin"
	PathBenefits  = "/benefits"
	PathAssistant = "/assistant"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, limiter *middleware.RateLimiter, authHandler *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth, limiter.ByIP())
	{
		authGroup.POST("/citizen", authHandler.CitizenLogin)
		authGroup.POST("/caseworker", authHandler.CaseworkerLogin)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	benefits := rg.Group(PathBenefits)
	{
		benefits.GET("", catalogHandler.ListBenefits)
		benefits.GET("/:id", catalogHandler.GetBenefit)
	}
}

func addAssistantRoutes(rg *gin.RouterGroup, limiter *middleware.RateLimiter, assistantHandler *handlers.AssistantHandler) {
	assistant := rg.Group(PathAssistant, limiter.ByIP())
	{
		assistant.POST("/recommendations", assistantHandler.Recommend)
	}
}

func addCitizenRoutes(rg *gin.RouterGroup, authenticated gin.HandlerFunc, profileHandler *handlers.ProfileHandler, requestHandler *handlers.BenefitRequestHandler) {
	me := rg.Group(PathMe, authenticated, middleware.RequireCitizen())
	{
		me.GET("", profileHandler.GetMe)
		me.PATCH("", profileHandler.UpdateMe)
	}

	requests := rg.Group(PathRequests, authenticated)
	{
		// Caseworkers also open documents through the viewer.
		requests.GET("/:id/documents/:index", requestHandler.GetDocument)

		citizen := requests.Group("", middleware.RequireCitizen())
		citizen.POST("", requestHandler.Submit)
		citizen.GET("", requestHandler.List)
		citizen.GET("/:id", requestHandler.Get)
		citizen.POST("/:id/exigencia/response", requestHandler.RespondToExigencia)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, authenticated gin.HandlerFunc, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, authenticated, middleware.RequireCaseworker())
	{
		admin.GET("/statuses", adminHandler.StatusOptions)
		admin.GET("/requests", adminHandler.ListRequests)
		admin.GET("/requests/:id", adminHandler.GetRequest)
		admin.POST("/requests/:id/exigencia", adminHandler.IssueExigencia)
		admin.PATCH("/requests/:id/status", adminHandler.SetStatus)
	}
}

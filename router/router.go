// Package router wires handlers and middleware into the gin engine.
package router

import (
	"github.com/feedbackhub/feedback-backend/config"
	"github.com/feedbackhub/feedback-backend/handlers"
	"github.com/feedbackhub/feedback-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	FeedbackHandler *handlers.FeedbackHandler
	AuthHandler     *handlers.AuthHandler
	HealthHandler   *handlers.HealthHandler
	Logger          *zap.SugaredLogger
}

// SetupRouter configures and returns the main gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes
	r.GET("/health", deps.HealthHandler.Health)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/feedback", deps.FeedbackHandler.SubmitFeedback)
		api.GET("/feedback", deps.FeedbackHandler.ListFeedback)

		users := api.Group("/users")
		{
			users.POST("/register", deps.AuthHandler.Register)
			users.POST("/login", deps.AuthHandler.Login)
		}
	}

	return r
}

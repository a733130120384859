package routes

import (
	"github.com/gin-gonic/gin"

	"inkletter/internal/interfaces/http/handlers"
	"inkletter/internal/interfaces/http/middleware"
)

// NewsletterRouteConfig holds dependencies for the subscription routes.
type NewsletterRouteConfig struct {
	NewsletterHandler *handlers.NewsletterHandler
	RateLimiter       *middleware.RateLimiter
}

// SetupNewsletterRoutes configures the double opt-in subscription routes.
func SetupNewsletterRoutes(engine *gin.Engine, cfg *NewsletterRouteConfig) {
	newsletter := engine.Group("/newsletter")
	newsletter.Use(cfg.RateLimiter.Limit())
	{
		newsletter.POST("/register", cfg.NewsletterHandler.Register)
		newsletter.POST("/confirm", cfg.NewsletterHandler.Confirm)
		newsletter.POST("/resend", cfg.NewsletterHandler.Resend)

		// Two-segment activation path: obfuscated email, then token.
		newsletter.GET("/activate/:email/:token", cfg.NewsletterHandler.Activate)
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"supportpulse.app/pulse/internal/http/handler"
	"supportpulse.app/pulse/internal/http/handler/webhook"
	"supportpulse.app/pulse/internal/http/middleware"
	"supportpulse.app/pulse/internal/service"
)

type RouterConfig struct {
	WebhookSecret       string
	WebhookMaxBodyBytes int64
	AdminAPIKey         string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		gorgiasHandler := webhook.NewGorgiasWebhookHandler(services.Dispatcher(), cfg.WebhookSecret, cfg.WebhookMaxBodyBytes)
		WebhookRouter(api.Group("/webhooks"), gorgiasHandler)

		pulseHandler := handler.NewPulseCheckHandler(services.PulseChecks())
		SeedRouter(api.Group("/seed", middleware.RequireAdminAPIKey(cfg.AdminAPIKey)), pulseHandler)

		v1 := api.Group("/v1")
		PulseCheckRouter(v1.Group("/pulse-checks"), pulseHandler)

		behaviorHandler := handler.NewBehaviorHandler(services.Behavior())
		BehaviorRouter(v1.Group("/agent-behavior"), behaviorHandler)
	}
}

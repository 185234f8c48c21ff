package router

import (
	"github.com/gin-gonic/gin"

	"supportpulse.app/pulse/internal/http/handler/webhook"
)

func WebhookRouter(router *gin.RouterGroup, gorgias *webhook.GorgiasWebhookHandler) {
	router.POST("/gorgias/events", gorgias.HandleEvent)
}

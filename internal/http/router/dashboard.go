package router

import (
	"github.com/gin-gonic/gin"

	"supportpulse.app/pulse/internal/http/handler"
)

func PulseCheckRouter(router *gin.RouterGroup, handler *handler.PulseCheckHandler) {
	router.GET("", handler.List)
	router.GET("/:id", handler.Get)
}

func SeedRouter(router *gin.RouterGroup, handler *handler.PulseCheckHandler) {
	router.POST("", handler.Seed)
}

func BehaviorRouter(router *gin.RouterGroup, handler *handler.BehaviorHandler) {
	router.GET("", handler.List)
	router.GET("/stats", handler.Stats)
}

package assist

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/internal/auth"
)

// registers the assist endpoints; history recording only happens for
// authenticated callers, so auth is optional here
func RegisterRoutes(router *gin.RouterGroup, svc Assistant, recorder HistoryRecorder) {
	assistGroup := router.Group("/assist")
	assistGroup.Use(auth.OptionalAuthMiddleware())
	{
		assistGroup.POST("/review", ReviewHandler(svc, recorder))
		assistGroup.POST("/rewrite", RewriteHandler(svc, recorder))
		assistGroup.POST("/visualize", VisualizeHandler(svc, recorder))
		assistGroup.POST("/explain", ExplainHandler(svc, recorder))
		assistGroup.GET("/model", ModelHandler(svc))
	}
}

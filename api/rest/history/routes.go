package history

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/codesage/history"
	"codeberg.org/codesage/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, historyRepo *history.Repository) {
	historyGroup := router.Group("/history")
	historyGroup.Use(auth.AuthMiddleware())
	{
		historyGroup.GET("", ListHandler(historyRepo))
		historyGroup.DELETE("", ClearHandler(historyRepo))
		historyGroup.DELETE("/:id", DeleteHandler(historyRepo))
	}
}

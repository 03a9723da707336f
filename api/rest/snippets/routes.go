package snippets

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/codesage/snippets"
	"codeberg.org/codesage/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, snippetRepo *snippets.Repository) {
	snippetsGroup := router.Group("/snippets")
	snippetsGroup.Use(auth.AuthMiddleware())
	{
		snippetsGroup.GET("", ListSnippetsHandler(snippetRepo))
		snippetsGroup.POST("", CreateSnippetHandler(snippetRepo))
		snippetsGroup.GET("/folders", ListFoldersHandler(snippetRepo))
		snippetsGroup.GET("/:id", GetSnippetHandler(snippetRepo))
		snippetsGroup.PUT("/:id", UpdateSnippetHandler(snippetRepo))
		snippetsGroup.DELETE("/:id", DeleteSnippetHandler(snippetRepo))
	}
}

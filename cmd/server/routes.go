package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/api/rest/assist"
	"codeberg.org/codesage/server/api/rest/auth"
	"codeberg.org/codesage/server/api/rest/health"
	"codeberg.org/codesage/server/api/rest/history"
	"codeberg.org/codesage/server/api/rest/snippets"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	rateLimit, err := RateLimitMiddleware(server.config.RedisURL)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")
	v1.Use(rateLimit)

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		assist.RegisterRoutes(v1, server.services.Assist, server.historyRepo)
		history.RegisterRoutes(v1, server.historyRepo)
		snippets.RegisterRoutes(v1, server.snippetRepo)
	}

	return nil
}

package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, userRepo UserStore) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(userRepo))
		authGroup.POST("/login", LoginHandler(userRepo))
		authGroup.GET("/me", auth.AuthMiddleware(), MeHandler(userRepo))
		authGroup.PUT("/me", auth.AuthMiddleware(), UpdateMeHandler(userRepo))
	}
}

package auth

import (
	"codeberg.org/metawork/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, store UserStore, clientURL string) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(store))
		authGroup.POST("/login", LoginHandler(store))
		authGroup.GET("/google", BeginGoogleHandler())
		authGroup.GET("/google/callback", CallbackHandler(store, clientURL))
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(store))
		authGroup.POST("/logout", LogoutHandler())
	}
}

package main

import (
	"time"

	"codeberg.org/metawork/server/api/rest/auth"
	"codeberg.org/metawork/server/api/rest/health"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{server.config.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(api, server.userRepo, server.config.ClientURL)
	}
}

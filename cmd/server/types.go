package main

import (
	"codeberg.org/metawork/server/internal/config"
	"codeberg.org/metawork/server/metawork/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	userRepo *users.Repository
	router   *gin.Engine
}

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/codesage/server/codesage/history"
	"codeberg.org/codesage/server/codesage/snippets"
	"codeberg.org/codesage/server/codesage/users"
	"codeberg.org/codesage/server/internal/assist"
	"codeberg.org/codesage/server/internal/config"
	"codeberg.org/codesage/server/internal/gateway"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	historyRepo *history.Repository
	snippetRepo *snippets.Repository
	services    *Services
	router      *gin.Engine
}

// holds the AI service clients
type Services struct {
	Executor *gateway.Executor
	Assist   *assist.Service
}

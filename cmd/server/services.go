package main

import (
	"codeberg.org/codesage/server/internal/assist"
	"codeberg.org/codesage/server/internal/config"
	"codeberg.org/codesage/server/internal/gateway"
)

// creates the upstream executor and the assist service on top of it
func InitializeServices(cfg *config.Config) *Services {
	executor := gateway.NewExecutor(gateway.Credentials{
		Primary:  cfg.GroqAPIKey,
		Fallback: cfg.GroqFallbackKey,
	})

	return &Services{
		Executor: executor,
		Assist:   assist.New(executor),
	}
}

package main

import (
	"context"

	_ "claimscope/docs"
	"claimscope/internal/adapter/http/routes"
	"claimscope/internal/infrastructure/config"
	"claimscope/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Claim Estimate API
// @version         1.0
// @description     Claim estimate hierarchy, dimension engine and financial rollup backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	if _, err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := routes.Run(cfg); err != nil {
		logger.Fatal(context.Background(), err)
	}
}

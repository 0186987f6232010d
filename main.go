package main

import (
	"context"
	"log"

	"dalshop-gateway/controller"
	"dalshop-gateway/dal"
	"dalshop-gateway/infrastructure"
	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/utils"
	"dalshop-gateway/utils/logger"
	"dalshop-gateway/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var config *models.Config

func Init() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)

	dbclient, err := dal.NewDynamoDBClient(config, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}
	if err := infrastructure.EnsureTables(ctx, config, dbclient, appLogger); err != nil {
		log.Fatalf("Failed to ensure tables: %v", err)
	}

	r := gin.New()
	c := controller.NewController(ctx, config, appLogger)

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(dbclient, config, appLogger)
	reaper, err := worker.NewService(ctx, config, sessionRepo, appLogger)
	if err != nil {
		log.Fatalf("Failed to create session reaper: %v", err)
	}
	if err := reaper.StartInBackground(); err != nil {
		log.Fatalf("Failed to start session reaper: %v", err)
	}

	// Keep main goroutine alive
	select {}
}

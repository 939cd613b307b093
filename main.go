package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/incident-assist/backend/internal/client"
	"github.com/incident-assist/backend/internal/config"
	"github.com/incident-assist/backend/internal/db"
	"github.com/incident-assist/backend/internal/handler"
	"github.com/incident-assist/backend/internal/service"
)

// @title Incident Assist API
// @version 1.0
// @description Question answering over recent incident records
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	// The two AWS clients are built once and shared across requests.
	dynamoClient, err := db.NewDynamoDBClient(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		log.Fatalf("Failed to init dynamodb client: %v", err)
	}
	bedrockClient, err := client.NewBedrockRuntimeClient(ctx, cfg.AWS, cfg.Bedrock)
	if err != nil {
		log.Fatalf("Failed to init bedrock client: %v", err)
	}

	store := db.NewIncidentStore(dynamoClient, cfg.DynamoDB.Table)
	bedrock := client.NewBedrockClient(bedrockClient, cfg.Bedrock.ModelID)
	askService := service.NewAskService(store, bedrock)
	askHandler := handler.NewAskHandler(askService)

	router := gin.Default()
	router.Use(handler.RequestIDMiddleware())
	if len(cfg.Server.AllowedOrigins) > 0 {
		router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))
	}

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	api := router.Group("/api/v1")
	{
		api.POST("/ask", askHandler.Ask)
	}

	log.Printf("Starting server on :%s (table=%s, model=%s)", cfg.Server.Port, cfg.DynamoDB.Table, cfg.Bedrock.ModelID)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

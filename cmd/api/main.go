package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jamar2101/Back-End-Artalis/internal/config"
	"github.com/jamar2101/Back-End-Artalis/internal/database"
	"github.com/jamar2101/Back-End-Artalis/internal/routes"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	router := gin.Default()
	if err := routes.RegisterRoutes(router, db, cfg); err != nil {
		log.Fatal(err)
	}

	log.Println("server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jamar2101/Back-End-Artalis/internal/cache"
	"github.com/jamar2101/Back-End-Artalis/internal/config"
	"github.com/jamar2101/Back-End-Artalis/internal/handlers"
	"github.com/jamar2101/Back-End-Artalis/internal/middleware"
	"github.com/jamar2101/Back-End-Artalis/internal/repository"
	"github.com/jamar2101/Back-End-Artalis/internal/upload"
)

// RegisterRoutes wires repositories, handlers and middleware onto the
// router. Catalog reads are public; mutations sit behind the JWT admin gate.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) error {
	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		return err
	}

	responseCache := cache.New(5 * time.Minute)

	productHandler := handlers.NewProductHandler(
		repository.NewProductRepository(db),
		saver,
		responseCache,
	)
	authHandler := handlers.NewAuthHandler(repository.NewUserRepository(db), cfg.JWTSecret)

	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/categories", productHandler.GetCategories)
			products.GET("/featured", productHandler.GetFeatured)
			products.GET("/:id", productHandler.GetProductByID)

			admin := products.Group("")
			admin.Use(middleware.Protect(cfg.JWTSecret), middleware.AdminOnly())
			{
				admin.POST("", productHandler.CreateProduct)
				admin.PUT("/:id", productHandler.UpdateProduct)
				admin.DELETE("/:id", productHandler.DeleteProduct)
			}
		}
	}

	return nil
}

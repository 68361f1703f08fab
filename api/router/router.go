package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"campus-board/api/handlers"
	"campus-board/api/middleware"
	"campus-board/config"
	"campus-board/db"
	_ "campus-board/docs"
	"campus-board/dto"
	"campus-board/repositories"
	"campus-board/services"
)

func New(database *mongo.Database, cfg config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx, database); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", Mongo: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		itemsSvc := services.NewItemService(
			repositories.NewItemRepository(database),
			repositories.NewVoteRepository(database),
			cfg.Items,
		)
		api.GET("/items/:type", handlers.ListItemsHandler(itemsSvc))
		api.GET("/items/:type/:id", handlers.GetItemHandler(itemsSvc))
	}

	return r
}

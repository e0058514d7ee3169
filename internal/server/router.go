package server

import (
	"net/http"

	auction "auction-server/internal/auctionService"
	handler "auction-server/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.RegisterUserHandler)
	}

	products := router.Group("/products")
	{
		products.POST("", auctionHandler.AddProductHandler)
		products.GET("", auctionHandler.GetProductsHandler)
		products.GET("/:product_id/bids", auctionHandler.GetProductBidsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

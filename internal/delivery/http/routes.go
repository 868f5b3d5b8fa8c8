package http

import "github.com/gin-gonic/gin"

// SetupRouter creates and configures the Gin router for the stub catalog
func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.GET("/health", handler.HealthCheck)
	router.GET("/products", handler.ListProducts)
	router.GET("/products/:id", handler.GetProduct)

	return router
}

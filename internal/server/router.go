package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ovenlight/mealdesk-backend/internal/http/handlers"
)

type RouterConfig struct {
	ProductHandler  *handlers.ProductHandler
	CategoryHandler *handlers.CategoryHandler
	TagHandler      *handlers.TagHandler
	OrderHandler    *handlers.OrderHandler
	HealthHandler   *handlers.HealthHandler
	AllowedOrigins  []string
	TraceContext    gin.HandlerFunc
	RequestLog      gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Trace-Id", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Trace-Id", "X-Request-Id"},
		AllowCredentials: true,
	}))

	router.Use(otelgin.Middleware("mealdesk-backend"))
	if cfg.TraceContext != nil {
		router.Use(cfg.TraceContext)
	}
	if cfg.RequestLog != nil {
		router.Use(cfg.RequestLog)
	}

	router.GET("/healthcheck", cfg.HealthHandler.Check)

	api := router.Group("/api")
	{
		// Products
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:id", cfg.ProductHandler.Get)
		api.POST("/products", cfg.ProductHandler.Create)
		api.PUT("/products/:id", cfg.ProductHandler.Update)
		api.POST("/products/:id/retire", cfg.ProductHandler.Retire)
		api.POST("/products/:id/unretire", cfg.ProductHandler.Unretire)
		api.DELETE("/products/:id", cfg.ProductHandler.Delete)

		// Categories
		api.GET("/categories", cfg.CategoryHandler.List)
		api.GET("/categories/:id", cfg.CategoryHandler.Get)
		api.POST("/categories", cfg.CategoryHandler.Create)
		api.PUT("/categories/:id", cfg.CategoryHandler.Update)
		api.POST("/categories/:id/retire", cfg.CategoryHandler.Retire)
		api.POST("/categories/:id/unretire", cfg.CategoryHandler.Unretire)
		api.DELETE("/categories/:id", cfg.CategoryHandler.Delete)
		api.POST("/categories/:id/products", cfg.CategoryHandler.AttachProducts)
		api.DELETE("/categories/:id/products/:productId", cfg.CategoryHandler.DetachProduct)

		// Tags
		api.GET("/tags", cfg.TagHandler.List)
		api.GET("/tags/:id", cfg.TagHandler.Get)
		api.POST("/tags", cfg.TagHandler.Create)
		api.PUT("/tags/:id", cfg.TagHandler.Update)
		api.POST("/tags/:id/retire", cfg.TagHandler.Retire)
		api.POST("/tags/:id/unretire", cfg.TagHandler.Unretire)
		api.DELETE("/tags/:id", cfg.TagHandler.Delete)
		api.POST("/tags/:id/products", cfg.TagHandler.AttachProducts)
		api.DELETE("/tags/:id/products/:productId", cfg.TagHandler.DetachProduct)

		// Orders
		api.GET("/orders", cfg.OrderHandler.List)
		api.GET("/orders/:id", cfg.OrderHandler.Get)
		api.POST("/orders", cfg.OrderHandler.Create)
		api.PUT("/orders/:id", cfg.OrderHandler.Update)
		api.DELETE("/orders/:id", cfg.OrderHandler.Delete)
		api.PUT("/orders/:id/items/:productId", cfg.OrderHandler.SetLine)
		api.DELETE("/orders/:id/items/:productId", cfg.OrderHandler.RemoveLine)
	}

	return router
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/middleware"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/services"
)

type RouterDeps struct {
	Logger              *zap.Logger
	Catalog             *catalog.Catalog
	Orders              *services.OrderService
	Builds              *services.BuildService
	Registry            *builder.Registry
	Images              ImageStore
	StoreName           string
	StaffJWTSecret      string
	KitchenWebhookToken string
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(d.Logger))
	router.Use(gin.Recovery())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
			Error:   "method not allowed",
			Message: c.Request.Method + " is not supported on " + c.Request.URL.Path,
		})
	})

	ingredientsHandler := NewIngredientsHandler(d.Catalog)
	imagesHandler := NewImagesHandler(d.Catalog, d.Images)
	ordersHandler := NewOrdersHandler(d.Orders)
	buildsHandler := NewBuildsHandler(d.Registry, d.Catalog, d.Builds)
	webhookHandler := NewWebhookHandler(d.Orders)
	healthHandler := NewHealthHandler(d.Orders, d.StoreName, d.Catalog.Len())

	staffOnly := middleware.StaffAuth(d.StaffJWTSecret)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")

	// Catalog
	api.GET("/ingredients", ingredientsHandler.ListIngredients)
	api.GET("/ingredients/type/:type", ingredientsHandler.ListByType)
	api.GET("/ingredients/:id", ingredientsHandler.GetIngredient)
	api.GET("/ingredients/:id/nutrition", ingredientsHandler.GetNutrition)
	api.GET("/ingredients/:id/image", imagesHandler.GetImage)
	api.PUT("/ingredients/:id/image", staffOnly, imagesHandler.UploadImage)

	// Orders
	api.POST("/orders", ordersHandler.CreateOrder)
	api.GET("/orders/:id", ordersHandler.GetOrder)
	api.GET("/orders/number/:orderNumber", ordersHandler.GetOrderByNumber)
	api.PATCH("/orders/:id/status", staffOnly, ordersHandler.UpdateStatus)

	// Build sessions
	api.POST("/builds", buildsHandler.CreateBuild)
	api.GET("/builds/:id", buildsHandler.GetBuild)
	api.POST("/builds/:id/gestures", buildsHandler.Gesture)
	api.PUT("/builds/:id/drop-target", buildsHandler.SetDropTarget)
	api.DELETE("/builds/:id/selection", buildsHandler.ClearSelection)
	api.POST("/builds/:id/submit", buildsHandler.Submit)

	// Webhook (shared token)
	api.POST("/webhooks/kitchen", middleware.SharedToken(d.KitchenWebhookToken), webhookHandler.HandleKitchenEvent)

	return router
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"kids-burger-backend/internal/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store       Pinger
	storeName   string
	catalogSize int
}

func NewHealthHandler(store Pinger, storeName string, catalogSize int) *HealthHandler {
	return &HealthHandler{store: store, storeName: storeName, catalogSize: catalogSize}
}

// Health godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := models.HealthResponse{
		Status:     "ok",
		OrderStore: h.storeName,
		Catalog:    h.catalogSize,
	}
	if err := h.store.Ping(ctx); err != nil {
		_ = c.Error(err)
		response.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/services"
)

const kitchenStatusEvent = "order_status"

type WebhookHandler struct {
	orders *services.OrderService
}

func NewWebhookHandler(orders *services.OrderService) *WebhookHandler {
	return &WebhookHandler{orders: orders}
}

// HandleKitchenEvent godoc
// @Summary     Kitchen display webhook
// @Description Receives status updates from the kitchen display, addressed by order number. Authenticated with the shared kitchen token.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       Authorization header string true "Bearer <kitchen token>"
// @Param       request body models.KitchenWebhookEvent true "Status update"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /webhooks/kitchen [post]
func (h *WebhookHandler) HandleKitchenEvent(c *gin.Context) {
	var event models.KitchenWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if event.Event != "" && event.Event != kitchenStatusEvent {
		badRequest(c, "unsupported event "+event.Event)
		return
	}
	if event.OrderNumber == "" {
		badRequest(c, "orderNumber is required")
		return
	}

	order, err := h.orders.UpdateStatusByNumber(c.Request.Context(), event.OrderNumber, event.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

package models

type CreateOrderRequest struct {
	Ingredients []OrderLine `json:"ingredients"`
	// TotalPrice is the client's running total as a decimal string, e.g. "500".
	// The server recomputes the total and rejects a mismatch.
	TotalPrice string `json:"totalPrice" example:"500.00"`
	Status     string `json:"status,omitempty" example:"pending"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" example:"preparing"`
}

type CreateBuildRequest struct {
	DropTarget *Rect `json:"dropTarget,omitempty"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GestureRequest is one raw input event from the client.
// Pointer types: dragstart, dragenter, dragleave, drop, dragend.
// Touch types: touchstart, touchmove, touchend, touchcancel.
type GestureRequest struct {
	Modality     string  `json:"modality" example:"pointer"`
	Type         string  `json:"type" example:"dragstart"`
	Payload      string  `json:"payload,omitempty"`
	IngredientID int64   `json:"ingredientId,omitempty"`
	X            float64 `json:"x,omitempty"`
	Y            float64 `json:"y,omitempty"`
}

type KitchenWebhookEvent struct {
	Event       string `json:"event" example:"order_status"`
	OrderNumber string `json:"orderNumber" example:"KID0001"`
	Status      string `json:"status" example:"ready"`
}

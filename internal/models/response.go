package models

import "time"

type IngredientResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        Category `json:"type"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	IsAvailable bool     `json:"isAvailable"`
}

func NewIngredientResponse(ing Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:          ing.ID,
		Name:        ing.Name,
		Type:        ing.Type,
		Price:       ing.Price.InexactFloat64(),
		ImageURL:    ing.ImageURL,
		IsAvailable: ing.IsAvailable,
	}
}

func NewIngredientResponses(ings []Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(ings))
	for i, ing := range ings {
		out[i] = NewIngredientResponse(ing)
	}
	return out
}

type NutritionResponse struct {
	IngredientID int64  `json:"ingredientId"`
	Name         string `json:"name"`
	NutritionFacts
}

type OrderResponse struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Ingredients []OrderLine `json:"ingredients"`
	TotalPrice  string      `json:"totalPrice"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func NewOrderResponse(o *Order) OrderResponse {
	lines := o.Ingredients
	if lines == nil {
		lines = []OrderLine{}
	}
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Ingredients: lines,
		TotalPrice:  o.TotalPrice.StringFixed(2),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

type SelectionEntryResponse struct {
	Sequence   int                `json:"sequence"`
	Ingredient IngredientResponse `json:"ingredient"`
}

type GroupedIngredientResponse struct {
	Ingredient IngredientResponse `json:"ingredient"`
	Count      int                `json:"count"`
	Subtotal   string             `json:"subtotal"`
}

type BuildSummaryResponse struct {
	ID              string                      `json:"id"`
	State           string                      `json:"state"`
	Held            *IngredientResponse         `json:"held,omitempty"`
	Selection       []SelectionEntryResponse    `json:"selection"`
	Grouped         []GroupedIngredientResponse `json:"grouped"`
	Total           string                      `json:"total"`
	Step            int                         `json:"step"`
	CanComplete     bool                        `json:"canComplete"`
	Submitting      bool                        `json:"submitting"`
	LastAdded       *IngredientResponse         `json:"lastAdded,omitempty"`
	Tip             string                      `json:"tip,omitempty"`
	DropTarget      Rect                        `json:"dropTarget"`
	LastOrderNumber string                      `json:"lastOrderNumber,omitempty"`
}

type GestureResponse struct {
	Committed bool                 `json:"committed"`
	Summary   BuildSummaryResponse `json:"summary"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	OrderStore string `json:"orderStore,omitempty"`
	Catalog    int    `json:"catalogSize,omitempty"`
}

type ImageUploadResponse struct {
	IngredientID int64  `json:"ingredientId"`
	URL          string `json:"url"`
}

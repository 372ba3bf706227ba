package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/models"
)

type IngredientsHandler struct {
	catalog *catalog.Catalog
}

func NewIngredientsHandler(c *catalog.Catalog) *IngredientsHandler {
	return &IngredientsHandler{catalog: c}
}

// ListIngredients godoc
// @Summary     List ingredients
// @Description Returns every available ingredient in catalog order.
// @Tags        ingredients
// @Produce     json
// @Success     200 {array} models.IngredientResponse
// @Router      /ingredients [get]
func (h *IngredientsHandler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewIngredientResponses(h.catalog.List()))
}

// ListByType godoc
// @Summary     List ingredients of one type
// @Description Returns the available ingredients of a category. An unknown category yields an empty list.
// @Tags        ingredients
// @Produce     json
// @Param       type path string true "Category" Enums(bun, protein, cheese, vegetable, sauce)
// @Success     200 {array} models.IngredientResponse
// @Router      /ingredients/type/{type} [get]
func (h *IngredientsHandler) ListByType(c *gin.Context) {
	category := models.Category(strings.ToLower(c.Param("type")))
	c.JSON(http.StatusOK, models.NewIngredientResponses(h.catalog.ListByType(category)))
}

// GetIngredient godoc
// @Summary     Get an ingredient
// @Tags        ingredients
// @Produce     json
// @Param       id path int true "Ingredient ID"
// @Success     200 {object} models.IngredientResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /ingredients/{id} [get]
func (h *IngredientsHandler) GetIngredient(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	ing, err := h.catalog.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewIngredientResponse(ing))
}

// GetNutrition godoc
// @Summary     Get nutrition facts
// @Description Returns the kid-friendly nutrition card for an ingredient.
// @Tags        ingredients
// @Produce     json
// @Param       id path int true "Ingredient ID"
// @Success     200 {object} models.NutritionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /ingredients/{id}/nutrition [get]
func (h *IngredientsHandler) GetNutrition(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	ing, err := h.catalog.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	facts, err := h.catalog.Nutrition(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NutritionResponse{
		IngredientID:   ing.ID,
		Name:           ing.Name,
		NutritionFacts: facts,
	})
}

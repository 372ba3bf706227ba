package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/services"
	"kids-burger-backend/internal/store"
)

// respondError maps domain errors to HTTP statuses. Unrecognised errors are
// reported as 500 without their text.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation failed",
			Details: verr.Details,
		})
	case errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, catalog.ErrIngredientNotFound),
		errors.Is(err, catalog.ErrNoNutritionFacts),
		errors.Is(err, builder.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: err.Error()})
	case errors.Is(err, builder.ErrEmptyBuild),
		errors.Is(err, builder.ErrInvalidTarget),
		errors.Is(err, builder.ErrMalformedPayload),
		errors.Is(err, builder.ErrUnknownModality),
		errors.Is(err, builder.ErrUnknownGesture),
		errors.Is(err, builder.ErrInvalidIngredient),
		errors.Is(err, builder.ErrUnavailable):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad request", Message: err.Error()})
	case errors.Is(err, builder.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "conflict", Message: err.Error()})
	case errors.Is(err, builder.ErrTooManySessions):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "service unavailable", Message: err.Error()})
	case errors.Is(err, services.ErrSubmitTimeout):
		c.JSON(http.StatusGatewayTimeout, models.ErrorResponse{Error: "timeout", Message: services.ErrSubmitTimeout.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad request", Message: message})
}

// int64Param parses a positive integer path parameter, answering 400 when it
// is not one.
func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v < 1 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return v, true
}

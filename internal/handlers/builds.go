package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/services"
)

type BuildsHandler struct {
	registry *builder.Registry
	catalog  *catalog.Catalog
	builds   *services.BuildService
}

func NewBuildsHandler(registry *builder.Registry, c *catalog.Catalog, builds *services.BuildService) *BuildsHandler {
	return &BuildsHandler{
		registry: registry,
		catalog:  c,
		builds:   builds,
	}
}

func (h *BuildsHandler) summary(s *builder.Session) models.BuildSummaryResponse {
	sum := s.Summary()

	resp := models.BuildSummaryResponse{
		ID:              sum.ID.String(),
		State:           sum.State.String(),
		Selection:       make([]models.SelectionEntryResponse, len(sum.Entries)),
		Grouped:         make([]models.GroupedIngredientResponse, len(sum.Groups)),
		Total:           sum.Total.StringFixed(2),
		Step:            sum.Step,
		CanComplete:     sum.CanComplete,
		Submitting:      sum.Submitting,
		DropTarget:      models.Rect(sum.DropTarget),
		LastOrderNumber: sum.LastOrderNumber,
	}
	for i, e := range sum.Entries {
		resp.Selection[i] = models.SelectionEntryResponse{
			Sequence:   e.Sequence,
			Ingredient: models.NewIngredientResponse(e.Ingredient),
		}
	}
	for i, g := range sum.Groups {
		resp.Grouped[i] = models.GroupedIngredientResponse{
			Ingredient: models.NewIngredientResponse(g.Ingredient),
			Count:      g.Count,
			Subtotal:   g.Subtotal().StringFixed(2),
		}
	}
	if sum.Held != nil {
		held := models.NewIngredientResponse(*sum.Held)
		resp.Held = &held
	}
	if sum.LastAdded != nil {
		last := models.NewIngredientResponse(*sum.LastAdded)
		resp.LastAdded = &last
		resp.Tip = h.catalog.Tip(*sum.LastAdded)
	}
	return resp
}

func (h *BuildsHandler) session(c *gin.Context) (*builder.Session, bool) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return s, true
}

// CreateBuild godoc
// @Summary     Start a burger build
// @Description Opens a build session. The optional drop target is the burger's on-screen rectangle used for touch hit-testing.
// @Tags        builds
// @Accept      json
// @Produce     json
// @Param       request body models.CreateBuildRequest false "Drop target"
// @Success     201 {object} models.BuildSummaryResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /builds [post]
func (h *BuildsHandler) CreateBuild(c *gin.Context) {
	var req models.CreateBuildRequest
	// The body is optional.
	_ = c.ShouldBindJSON(&req)

	target := builder.DefaultDropTarget
	if req.DropTarget != nil {
		target = builder.Rect(*req.DropTarget)
	}

	s, err := h.registry.Create(target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.summary(s))
}

// GetBuild godoc
// @Summary     Get a build
// @Tags        builds
// @Produce     json
// @Param       id path string true "Build ID (UUID)"
// @Success     200 {object} models.BuildSummaryResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /builds/{id} [get]
func (h *BuildsHandler) GetBuild(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.summary(s))
}

// Gesture godoc
// @Summary     Send an input event
// @Description Feeds one pointer or touch event into the build's drag-and-drop state machine. An ingredient is added only when it is released over the burger.
// @Tags        builds
// @Accept      json
// @Produce     json
// @Param       id path string true "Build ID (UUID)"
// @Param       request body models.GestureRequest true "Input event"
// @Success     200 {object} models.GestureResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /builds/{id}/gestures [post]
func (h *BuildsHandler) Gesture(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req models.GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	committed, err := s.Dispatch(builder.Modality(strings.ToLower(req.Modality)), builder.Input{
		Type:         req.Type,
		Payload:      req.Payload,
		IngredientID: req.IngredientID,
		X:            req.X,
		Y:            req.Y,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GestureResponse{
		Committed: committed,
		Summary:   h.summary(s),
	})
}

// SetDropTarget godoc
// @Summary     Update the drop target
// @Description Replaces the burger's on-screen rectangle, e.g. after the layout changes.
// @Tags        builds
// @Accept      json
// @Produce     json
// @Param       id path string true "Build ID (UUID)"
// @Param       request body models.Rect true "Drop target"
// @Success     200 {object} models.BuildSummaryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /builds/{id}/drop-target [put]
func (h *BuildsHandler) SetDropTarget(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req models.Rect
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := s.SetDropTarget(builder.Rect(req)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.summary(s))
}

// ClearSelection godoc
// @Summary     Start over
// @Description Removes every ingredient from the build.
// @Tags        builds
// @Produce     json
// @Param       id path string true "Build ID (UUID)"
// @Success     200 {object} models.BuildSummaryResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /builds/{id}/selection [delete]
func (h *BuildsHandler) ClearSelection(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Clear()
	c.JSON(http.StatusOK, h.summary(s))
}

// Submit godoc
// @Summary     Complete the burger
// @Description Places the build as an order. Only one submission per build may be in flight.
// @Tags        builds
// @Produce     json
// @Param       id path string true "Build ID (UUID)"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     504 {object} models.ErrorResponse
// @Router      /builds/{id}/submit [post]
func (h *BuildsHandler) Submit(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	order, err := h.builds.Submit(c.Request.Context(), s)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewOrderResponse(order))
}

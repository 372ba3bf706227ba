package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/events"
	"kids-burger-backend/internal/handlers"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/services"
	"kids-burger-backend/internal/store"
)

type fakeImages struct {
	objects map[string][]byte
}

func (f *fakeImages) DownloadFile(path string) ([]byte, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeImages) UploadFile(path, _ string, data []byte) (string, error) {
	f.objects[path] = data
	return "https://cdn.test/" + path, nil
}

type testOptions struct {
	catalog      *catalog.Catalog
	images       handlers.ImageStore
	staffSecret  string
	kitchenToken string
	maxBuilds    int
}

func newRouter(t *testing.T, opts testOptions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := opts.catalog
	if c == nil {
		c = catalog.Default()
	}
	logger := zap.NewNop()
	orders := services.NewOrderService(store.NewMemoryStore(), c.Lookup, events.NewLogPublisher(logger), logger)

	return handlers.NewRouter(handlers.RouterDeps{
		Logger:              logger,
		Catalog:             c,
		Orders:              orders,
		Builds:              services.NewBuildService(orders, time.Second, logger),
		Registry:            builder.NewRegistry(c.Lookup, time.Hour).WithLimit(opts.maxBuilds),
		Images:              opts.images,
		StoreName:           "memory",
		StaffJWTSecret:      opts.staffSecret,
		KitchenWebhookToken: opts.kitchenToken,
	})
}

func request(router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "memory", resp.OrderStore)
	assert.Equal(t, 14, resp.Catalog)
}

func TestIngredients(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "GET", "/api/ingredients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.IngredientResponse](t, w)
	require.Len(t, all, 14)
	assert.Equal(t, "Sesame Bun", all[0].Name)
	assert.Equal(t, float64(50), all[0].Price)
	assert.Contains(t, w.Body.String(), `"imageUrl"`)
	assert.Contains(t, w.Body.String(), `"isAvailable":true`)

	w = request(router, "GET", "/api/ingredients/type/cheese", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cheese := decode[[]models.IngredientResponse](t, w)
	require.Len(t, cheese, 2)
	for _, ing := range cheese {
		assert.Equal(t, models.CategoryCheese, ing.Type)
	}

	w = request(router, "GET", "/api/ingredients/type/dessert", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = request(router, "GET", "/api/ingredients/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Beef Patty", decode[models.IngredientResponse](t, w).Name)

	assert.Equal(t, http.StatusNotFound, request(router, "GET", "/api/ingredients/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, request(router, "GET", "/api/ingredients/beef", nil).Code)
}

func TestIngredientNutrition(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "GET", "/api/ingredients/3/nutrition", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.NutritionResponse](t, w)
	assert.Equal(t, "Beef Patty", resp.Name)
	assert.Positive(t, resp.Calories)

	// Mozzarella has no nutrition card.
	assert.Equal(t, http.StatusNotFound, request(router, "GET", "/api/ingredients/11/nutrition", nil).Code)
}

func TestIngredientImage(t *testing.T) {
	c, err := catalog.New([]models.Ingredient{
		{ID: 1, Name: "Beef Patty", Type: models.CategoryProtein, ImageURL: "/images/beef.png", IsAvailable: true},
		{ID: 2, Name: "Ketchup", Type: models.CategorySauce, ImageURL: "https://cdn.test/ketchup.png", IsAvailable: true},
	}, nil)
	require.NoError(t, err)
	png := []byte("\x89PNG\r\n\x1a\n0000")
	images := &fakeImages{objects: map[string][]byte{"ingredients/beef.png": png}}
	router := newRouter(t, testOptions{catalog: c, images: images})

	w := request(router, "GET", "/api/ingredients/1/image", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())

	w = request(router, "GET", "/api/ingredients/2/image", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://cdn.test/ketchup.png", w.Header().Get("Location"))
}

func TestIngredientImageUpload(t *testing.T) {
	c, err := catalog.New([]models.Ingredient{
		{ID: 1, Name: "Beef Patty", Type: models.CategoryProtein, ImageURL: "/images/beef.png", IsAvailable: true},
	}, nil)
	require.NoError(t, err)
	images := &fakeImages{objects: map[string][]byte{}}
	router := newRouter(t, testOptions{catalog: c, images: images})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "beef.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n0000"))
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest("PUT", "/api/ingredients/1/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "https://cdn.test/ingredients/beef.png", decode[models.ImageUploadResponse](t, w).URL)
	assert.Contains(t, images.objects, "ingredients/beef.png")
}

func TestCreateOrder(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 3, "quantity": 1}, {"id": 10, "quantity": 1}},
		"totalPrice":  "500",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[models.OrderResponse](t, w)
	assert.Equal(t, "KID0001", order.OrderNumber)
	assert.Equal(t, "500.00", order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, []models.OrderLine{{ID: 3, Quantity: 1}, {ID: 10, Quantity: 1}}, order.Ingredients)
}

func TestCreateOrder_DistinctNumbers(t *testing.T) {
	router := newRouter(t, testOptions{})
	body := map[string]any{"ingredients": []map[string]int{{"id": 12, "quantity": 1}}}

	first := decode[models.OrderResponse](t, request(router, "POST", "/api/orders", body))
	second := decode[models.OrderResponse](t, request(router, "POST", "/api/orders", body))

	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateOrder_Validation(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "POST", "/api/orders", `{"ingredients":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 3, "quantity": 1}},
		"totalPrice":  "1.00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "totalPrice", resp.Details[0].Field)

	w = request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 404, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ingredients[0].id")
}

func TestOrders_WrongMethod(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "DELETE", "/api/orders", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "method not allowed", decode[models.ErrorResponse](t, w).Error)
}

func TestGetOrder(t *testing.T) {
	router := newRouter(t, testOptions{})
	created := decode[models.OrderResponse](t, request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 3, "quantity": 2}},
	}))

	w := request(router, "GET", "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.OrderNumber, decode[models.OrderResponse](t, w).OrderNumber)

	w = request(router, "GET", "/api/orders/number/"+created.OrderNumber, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[models.OrderResponse](t, w).ID)

	assert.Equal(t, http.StatusNotFound, request(router, "GET", "/api/orders/99999", nil).Code)
	assert.Equal(t, http.StatusNotFound, request(router, "GET", "/api/orders/number/KID9999", nil).Code)
	assert.Equal(t, http.StatusBadRequest, request(router, "GET", "/api/orders/abc", nil).Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	router := newRouter(t, testOptions{})
	request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 3, "quantity": 1}},
	})

	w := request(router, "PATCH", "/api/orders/1/status", map[string]string{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusPreparing, decode[models.OrderResponse](t, w).Status)

	w = request(router, "PATCH", "/api/orders/1/status", map[string]string{"status": "eaten"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(router, "PATCH", "/api/orders/99999/status", map[string]string{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus_StaffAuth(t *testing.T) {
	secret := "staff-secret-for-tests-must-be-long-enough"
	router := newRouter(t, testOptions{staffSecret: secret})
	request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 3, "quantity": 1}},
	})

	w := request(router, "PATCH", "/api/orders/1/status", map[string]string{"status": "ready"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "staff-1"}).SignedString([]byte(secret))
	require.NoError(t, err)
	w = request(router, "PATCH", "/api/orders/1/status", map[string]string{"status": "ready"}, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestKitchenWebhook(t *testing.T) {
	router := newRouter(t, testOptions{kitchenToken: "kitchen-secret"})
	auth := []string{"Authorization", "Bearer kitchen-secret"}
	request(router, "POST", "/api/orders", map[string]any{
		"ingredients": []map[string]int{{"id": 3, "quantity": 1}},
	})

	event := map[string]string{"event": "order_status", "orderNumber": "KID0001", "status": "ready"}

	assert.Equal(t, http.StatusUnauthorized, request(router, "POST", "/api/webhooks/kitchen", event).Code)

	w := request(router, "POST", "/api/webhooks/kitchen", event, auth...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.OrderStatusReady, decode[models.OrderResponse](t, w).Status)

	missing := map[string]string{"event": "order_status", "orderNumber": "KID9999", "status": "ready"}
	assert.Equal(t, http.StatusNotFound, request(router, "POST", "/api/webhooks/kitchen", missing, auth...).Code)

	unknown := map[string]string{"event": "refund", "orderNumber": "KID0001", "status": "ready"}
	assert.Equal(t, http.StatusBadRequest, request(router, "POST", "/api/webhooks/kitchen", unknown, auth...).Code)
}

func TestBuildFlow(t *testing.T) {
	router := newRouter(t, testOptions{})

	w := request(router, "POST", "/api/builds", map[string]any{
		"dropTarget": map[string]float64{"x": 0, "y": 0, "width": 200, "height": 200},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	build := decode[models.BuildSummaryResponse](t, w)
	assert.Equal(t, 1, build.Step)
	assert.Equal(t, "100.00", build.Total)
	assert.False(t, build.CanComplete)
	base := "/api/builds/" + build.ID

	w = request(router, "POST", base+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, g := range []map[string]any{
		{"modality": "pointer", "type": "dragstart", "payload": `{"id":3,"name":"Beef Patty"}`},
		{"modality": "pointer", "type": "dragenter"},
	} {
		require.Equal(t, http.StatusOK, request(router, "POST", base+"/gestures", g).Code)
	}
	w = request(router, "POST", base+"/gestures", map[string]any{"modality": "pointer", "type": "drop"})
	require.Equal(t, http.StatusOK, w.Code)
	gesture := decode[models.GestureResponse](t, w)
	assert.True(t, gesture.Committed)
	assert.Equal(t, "200.00", gesture.Summary.Total)
	require.NotNil(t, gesture.Summary.LastAdded)
	assert.Contains(t, gesture.Summary.Tip, "Beef Patty")

	w = request(router, "POST", base+"/gestures", map[string]any{"modality": "touch", "type": "touchstart", "ingredientId": 10})
	require.Equal(t, http.StatusOK, w.Code)
	w = request(router, "POST", base+"/gestures", map[string]any{"modality": "touch", "type": "touchend", "x": 500, "y": 500})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.GestureResponse](t, w).Committed)

	w = request(router, "POST", base+"/gestures", map[string]any{"modality": "touch", "type": "tap", "ingredientId": 10})
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.GestureResponse](t, w).Summary
	assert.Len(t, summary.Selection, 2)
	assert.Equal(t, "500.00", summary.Total)

	w = request(router, "POST", base+"/gestures", map[string]any{"modality": "pointer", "type": "dragstart", "payload": "{oops"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(router, "POST", base+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[models.OrderResponse](t, w)
	assert.Equal(t, "500.00", order.TotalPrice)

	w = request(router, "GET", base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	after := decode[models.BuildSummaryResponse](t, w)
	assert.Empty(t, after.Selection)
	assert.Equal(t, 3, after.Step)
	assert.Equal(t, order.OrderNumber, after.LastOrderNumber)
}

func TestBuild_DropTargetAndClear(t *testing.T) {
	router := newRouter(t, testOptions{})
	build := decode[models.BuildSummaryResponse](t, request(router, "POST", "/api/builds", nil))
	base := "/api/builds/" + build.ID
	assert.Equal(t, models.Rect{Width: 360, Height: 480}, build.DropTarget)

	w := request(router, "PUT", base+"/drop-target", map[string]float64{"x": 10, "y": 10, "width": 0, "height": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = request(router, "PUT", base+"/drop-target", map[string]float64{"x": 10, "y": 10, "width": 50, "height": 50})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Rect{X: 10, Y: 10, Width: 50, Height: 50}, decode[models.BuildSummaryResponse](t, w).DropTarget)

	request(router, "POST", base+"/gestures", map[string]any{"modality": "pointer", "type": "click", "ingredientId": 3})
	w = request(router, "DELETE", base+"/selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.BuildSummaryResponse](t, w).Selection)

	assert.Equal(t, http.StatusNotFound, request(router, "GET", "/api/builds/not-a-build", nil).Code)
}

func TestCreateBuild_RegistryFull(t *testing.T) {
	router := newRouter(t, testOptions{maxBuilds: 1})

	w := request(router, "POST", "/api/builds", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(router, "POST", "/api/builds", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "service unavailable", decode[models.ErrorResponse](t, w).Error)
}

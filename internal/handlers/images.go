package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/supabase"
)

const maxImageSize = 5 << 20

// ImageStore is the bucket ingredient artwork lives in.
type ImageStore interface {
	DownloadFile(storagePath string) ([]byte, error)
	UploadFile(storagePath, contentType string, data []byte) (string, error)
}

type ImagesHandler struct {
	catalog *catalog.Catalog
	storage ImageStore
}

// NewImagesHandler serves artwork from storage when it is configured; a nil
// storage redirects every request to the ingredient's image URL.
func NewImagesHandler(c *catalog.Catalog, storage ImageStore) *ImagesHandler {
	return &ImagesHandler{catalog: c, storage: storage}
}

// GetImage godoc
// @Summary     Get ingredient artwork
// @Description Streams the image from storage, or redirects to the ingredient's image URL when it is hosted elsewhere.
// @Tags        ingredients
// @Produce     image/png
// @Produce     image/jpeg
// @Param       id path int true "Ingredient ID"
// @Success     200 {file} binary
// @Success     302
// @Failure     404 {object} models.ErrorResponse
// @Router      /ingredients/{id}/image [get]
func (h *ImagesHandler) GetImage(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	ing, err := h.catalog.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if path, stored := supabase.ObjectPath(ing); stored && h.storage != nil {
		data, err := h.storage.DownloadFile(path)
		if err == nil {
			c.Header("Cache-Control", "public, max-age=86400")
			c.Data(http.StatusOK, http.DetectContentType(data), data)
			return
		}
		_ = c.Error(err)
	}

	if ing.ImageURL == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: "ingredient has no image"})
		return
	}
	c.Redirect(http.StatusFound, ing.ImageURL)
}

// UploadImage godoc
// @Summary     Replace ingredient artwork
// @Description Uploads new artwork for an ingredient whose image is kept in storage. Requires a staff token when staff auth is configured.
// @Tags        ingredients
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Ingredient ID"
// @Param       image formData file true "Image file (max 5 MB)"
// @Success     200 {object} models.ImageUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /ingredients/{id}/image [put]
func (h *ImagesHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "storage not configured"})
		return
	}

	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	ing, err := h.catalog.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, stored := supabase.ObjectPath(ing)
	if !stored {
		badRequest(c, "image for "+ing.Name+" is hosted externally")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		badRequest(c, "image exceeds 5 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		badRequest(c, "file is not an image")
		return
	}

	url, err := h.storage.UploadFile(path, contentType, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImageUploadResponse{IngredientID: ing.ID, URL: url})
}

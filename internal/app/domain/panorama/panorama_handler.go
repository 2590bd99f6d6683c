package panorama

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain"
	"github.com/pandusatria/wisata-tour/internal/app/models"
	"github.com/pandusatria/wisata-tour/internal/app/observability/metrics"
	"github.com/pandusatria/wisata-tour/internal/pkg/upload"
)

type PanoramaHandlers struct {
	*domain.BaseHandler
	service Service
	uploads *upload.Store
}

func NewPanoramaHandlers(service Service, uploads *upload.Store, logger *zap.Logger) *PanoramaHandlers {
	return &PanoramaHandlers{
		BaseHandler: domain.NewBaseHandler(logger),
		service:     service,
		uploads:     uploads,
	}
}

// ListHandler returns all panoramas in display order.
func (h *PanoramaHandlers) ListHandler(c *gin.Context) {
	panoramas, err := h.service.List(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if panoramas == nil {
		panoramas = []models.Panorama{}
	}
	c.JSON(http.StatusOK, panoramas)
}

// CreateHandler accepts either a JSON body with a stored filename or a
// multipart form carrying the image binary.
func (h *PanoramaHandlers) CreateHandler(c *gin.Context) {
	params, err := h.bind(c)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PanoramaHandlers) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid panorama id"})
		return
	}

	params, err := h.bind(c)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, params)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PanoramaHandlers) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid panorama id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "panorama deleted"})
}

// bind reads the create/update payload from either encoding. A multipart
// image upload is stored first and only the derived filename travels on.
func (h *PanoramaHandlers) bind(c *gin.Context) (models.CreatePanoramaParams, error) {
	var params models.CreatePanoramaParams

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		params.Name = c.PostForm("name")
		params.Description = c.PostForm("description")
		params.Image = c.PostForm("image")
		if v := c.PostForm("display_order"); v != "" {
			order, err := strconv.Atoi(v)
			if err != nil {
				return params, models.ErrBadRequest
			}
			params.DisplayOrder = order
		}

		if file, err := c.FormFile("image"); err == nil && file != nil {
			filename, err := h.uploads.Save(c, file, params.Name)
			if err != nil {
				return params, err
			}
			metrics.Get().UploadsTotal.Add(c.Request.Context(), 1)
			params.Image = filename
		}
		return params, nil
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		return params, models.ErrBadRequest
	}
	return params, nil
}

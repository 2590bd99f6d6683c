package tradisi

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

type TradisiHandlers struct {
	*domain.BaseHandler
	service Service
	uploads *upload.Store
}

func NewTradisiHandlers(service Service, uploads *upload.Store, logger *zap.Logger) *TradisiHandlers {
	return &TradisiHandlers{
		BaseHandler: domain.NewBaseHandler(logger),
		service:     service,
		uploads:     uploads,
	}
}

// ListHandler returns all points of interest, newest first.
func (h *TradisiHandlers) ListHandler(c *gin.Context) {
	pois, err := h.service.List(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if pois == nil {
		pois = []models.PointOfInterest{}
	}
	c.JSON(http.StatusOK, pois)
}

// GetHandler returns one point of interest for the detail overlay.
func (h *TradisiHandlers) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tradisi id"})
		return
	}

	poi, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, poi)
}

func (h *TradisiHandlers) CreateHandler(c *gin.Context) {
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

func (h *TradisiHandlers) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tradisi id"})
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

func (h *TradisiHandlers) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tradisi id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tradisi deleted"})
}

// bind reads the payload from JSON or multipart. Multipart carries the
// marker position as form fields and optionally the image binary.
func (h *TradisiHandlers) bind(c *gin.Context) (models.CreatePointOfInterestParams, error) {
	var params models.CreatePointOfInterestParams

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		params.Title = c.PostForm("title")
		params.Description = c.PostForm("description")
		params.Image = c.PostForm("image")

		if v := c.PostForm("panorama_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return params, models.ErrBadRequest
			}
			params.PanoramaID = id
		}

		var err error
		if params.PositionX, err = formFloat(c, "position_x"); err != nil {
			return params, err
		}
		if params.PositionY, err = formFloat(c, "position_y"); err != nil {
			return params, err
		}
		if params.PositionZ, err = formFloat(c, "position_z"); err != nil {
			return params, err
		}

		if file, err := c.FormFile("image"); err == nil && file != nil {
			filename, err := h.uploads.Save(c, file, params.Title)
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

func formFloat(c *gin.Context, field string) (float64, error) {
	v := c.PostForm(field)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, models.ErrBadRequest
	}
	return f, nil
}

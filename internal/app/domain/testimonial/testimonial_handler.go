package testimonial

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain"
	"github.com/pandusatria/wisata-tour/internal/app/models"
)

type TestimonialHandlers struct {
	*domain.BaseHandler
	service Service
}

func NewTestimonialHandlers(service Service, logger *zap.Logger) *TestimonialHandlers {
	return &TestimonialHandlers{
		BaseHandler: domain.NewBaseHandler(logger),
		service:     service,
	}
}

// ListHandler returns one page of the board plus the total count.
func (h *TestimonialHandlers) ListHandler(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 5)
	rating := queryInt(c, "rating", 0)

	board, err := h.service.List(c.Request.Context(), page, limit, rating)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *TestimonialHandlers) CreateHandler(c *gin.Context) {
	var params models.CreateTestimonialParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type replyRequest struct {
	Reply string `json:"reply"`
}

// ReplyHandler attaches the admin reply to one testimonial.
func (h *TestimonialHandlers) ReplyHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial id"})
		return
	}

	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.AttachReply(c.Request.Context(), id, req.Reply)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler removes a testimonial by the id query parameter, matching
// the public interface of the board.
func (h *TestimonialHandlers) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

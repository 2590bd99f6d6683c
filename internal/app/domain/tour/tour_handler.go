package tour

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain"
)

type TourHandlers struct {
	*domain.BaseHandler
	service Service
}

func NewTourHandlers(service Service, logger *zap.Logger) *TourHandlers {
	return &TourHandlers{
		BaseHandler: domain.NewBaseHandler(logger),
		service:     service,
	}
}

// GraphHandler returns the assembled scene graph for the viewer.
func (h *TourHandlers) GraphHandler(c *gin.Context) {
	graph, err := h.service.Graph(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, graph)
}

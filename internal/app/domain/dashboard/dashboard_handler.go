package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain"
)

type DashboardHandlers struct {
	*domain.BaseHandler
	service Service
}

func NewDashboardHandlers(service Service, logger *zap.Logger) *DashboardHandlers {
	return &DashboardHandlers{
		BaseHandler: domain.NewBaseHandler(logger),
		service:     service,
	}
}

func (h *DashboardHandlers) StatsHandler(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

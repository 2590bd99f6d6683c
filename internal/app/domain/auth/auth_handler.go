package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain"
	"github.com/pandusatria/wisata-tour/internal/app/observability/metrics"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandlers struct {
	*domain.BaseHandler
	service Service
}

func NewAuthHandlers(service Service, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		BaseHandler: domain.NewBaseHandler(logger),
		service:     service,
	}
}

// LoginHandler exchanges an admin credential for a one-hour session token.
func (h *AuthHandlers) LoginHandler(c *gin.Context) {
	metrics.Get().AuthRequestsTotal.Add(c.Request.Context(), 1)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

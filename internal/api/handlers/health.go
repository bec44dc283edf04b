package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookkept/matchd/internal/api/dto"
)

// HealthHandler handles health check requests.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles the health check request.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewHealthResponse())
}

package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

const livenessMessage = "Dr Faust Server is Running"

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Liveness handles GET /.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}

// Health handles GET /health with the latest dependency snapshot.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

package handlers

import (
	"net/http"
	"time"

	"leasehub-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	lifecycle *services.SubscriptionLifecycle
}

func NewMaintenanceHandler(lifecycle *services.SubscriptionLifecycle) *MaintenanceHandler {
	return &MaintenanceHandler{lifecycle: lifecycle}
}

// ExpireBoosts clears boost placement from every listing whose paid
// window has lapsed. Meant to be hit by a scheduler.
func (h *MaintenanceHandler) ExpireBoosts(c *gin.Context) {
	expired, err := h.lifecycle.ExpireBoosts(c.Request.Context(), time.Now())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": expired})
}

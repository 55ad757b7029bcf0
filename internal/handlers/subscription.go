package handlers

import (
	"net/http"
	"strconv"

	"leasehub-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// GetSubscriptions returns every subscription with its customer and
// property names joined in, or one filtered page when search/page
// parameters are present.
func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	search := c.Query("search")
	pageParam := c.Query("page")

	if search == "" && pageParam == "" {
		subscriptions, err := h.subscriptionService.ListSubscriptions(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions, "total": len(subscriptions)})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	window, total, totalPages, err := h.subscriptionService.SearchSubscriptions(c.Request.Context(), search, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subscriptions": window,
		"total":         total,
		"totalPages":    totalPages,
		"currentPage":   page,
	})
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription deleted"})
}

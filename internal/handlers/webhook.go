package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"leasehub-admin/internal/models"
	"leasehub-admin/internal/services"
	"leasehub-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WebhookHandler struct {
	lifecycle *services.SubscriptionLifecycle
	secret    string
}

func NewWebhookHandler(lifecycle *services.SubscriptionLifecycle, secret string) *WebhookHandler {
	return &WebhookHandler{lifecycle: lifecycle, secret: secret}
}

type paymentEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type subscriptionEventData struct {
	SubscriptionID  string    `json:"subscription_id"`
	BoostExpiration time.Time `json:"boost_expiration"`
}

// HandlePaymentWebhook applies subscription state changes pushed by the
// payment provider. Events may be delivered more than once, so a
// repeated event must succeed without changing anything.
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error reading body"})
		return
	}

	if !h.verifySignature(body, c.GetHeader("X-Webhook-Signature")) {
		logger.GlobalLogger.Error("Invalid webhook signature")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event paymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing webhook"})
		return
	}

	logger.GlobalLogger.Printf("Received webhook event: %s", event.Type)

	var newStatus models.SubscriptionStatus
	switch event.Type {
	case "subscription.activated", "subscription.renewed":
		newStatus = models.StatusActive
	case "subscription.canceled":
		newStatus = models.StatusCanceled
	case "subscription.payment_failed":
		newStatus = models.StatusPastDue
	case "subscription.payment_abandoned":
		newStatus = models.StatusUnpaid
	default:
		logger.GlobalLogger.Printf("Unhandled webhook event type: %s", event.Type)
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	var data subscriptionEventData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing event data"})
		return
	}
	subscriptionID, err := primitive.ObjectIDFromHex(data.SubscriptionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription id"})
		return
	}

	if err := h.lifecycle.ApplyTransition(c.Request.Context(), subscriptionID, newStatus, data.BoostExpiration); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if h.secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

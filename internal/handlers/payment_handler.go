package handlers

import (
	"context"
	"io"
	"net/http"

	"scamwise-backend/internal/middleware"
	"scamwise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service *service.SubscriptionService
}

func NewPaymentHandler(s *service.SubscriptionService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

func (h *PaymentHandler) SubscriptionStatus(c *gin.Context) {
	status, err := h.Service.Status(context.Background(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

type initializeRequest struct {
	Plan string `json:"plan" binding:"required"`
}

func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reference, authURL, err := h.Service.InitializePayment(context.Background(), middleware.CallerID(c), req.Plan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reference": reference, "authorizationUrl": authURL})
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	status, err := h.Service.VerifyPayment(context.Background(), middleware.CallerID(c), c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Webhook receives provider callbacks. The signature check runs on the raw
// body before anything is parsed; a mismatch is rejected and never processed.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	signature := c.GetHeader("x-paystack-signature")
	if !h.Service.Paystack.ValidWebhookSignature(body, signature) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}
	if err := h.Service.HandleWebhook(context.Background(), body); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "processed"})
}

func (h *PaymentHandler) CancelSubscription(c *gin.Context) {
	if err := h.Service.CancelSubscription(context.Background(), middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription cancelled"})
}

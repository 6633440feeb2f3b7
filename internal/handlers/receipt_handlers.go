package handlers

import (
	"net/http"

	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler holds the receipt service.
type ReceiptHandler struct {
	receiptService services.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(rs services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: rs}
}

// GenerateReceipt prints a receipt without recording a payment.
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
	var req services.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "GenerateReceipt: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	receipt, err := h.receiptService.GenerateReceipt(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "GenerateReceipt: Error from receiptService.GenerateReceipt")
		respondServiceError(c, err, "Failed to generate receipt.")
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

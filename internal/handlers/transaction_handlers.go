package handlers

import (
	"net/http"

	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TransactionHandler holds the transaction service.
type TransactionHandler struct {
	transactionService services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ts services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

// RecordPayment stores a payment and returns it with its receipt.
func (h *TransactionHandler) RecordPayment(c *gin.Context) {
	var req services.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordPayment: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	result, err := h.transactionService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "RecordPayment: Error from transactionService.RecordPayment")
		respondServiceError(c, err, "Failed to record payment.")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListTransactions returns the latest payments, ?limit= defaults to 100.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	limit := utils.StrToPositiveInt(c.Query("limit"), services.DefaultListLimit)

	records, err := h.transactionService.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		utils.LogError(err, "ListTransactions: Error from transactionService.ListTransactions")
		respondServiceError(c, err, "Failed to fetch transactions.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records, "total": len(records)})
}

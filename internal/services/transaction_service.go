package services

import (
	"context"

	"gym_frontdesk_backend/internal/metrics"
	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
)

// PaymentResult is a recorded payment and, when it could be produced, its receipt.
type PaymentResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Receipt     *models.Receipt     `json:"receipt,omitempty"`
}

// --- TransactionService Interface ---
type TransactionService interface {
	RecordPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
	ListTransactions(ctx context.Context, limit int) ([]models.TransactionRecord, error)
}

// --- transactionService Implementation ---
type transactionService struct {
	db         *sqlx.DB
	memberRepo repositories.MemberRepository
	txnRepo    repositories.TransactionRepository
	receipts   ReceiptService
	clock      Clock
}

// NewTransactionService creates a new instance of TransactionService.
// receipts may be nil, in which case payments are recorded without a receipt.
func NewTransactionService(
	db *sqlx.DB,
	memberRepo repositories.MemberRepository,
	txnRepo repositories.TransactionRepository,
	receipts ReceiptService,
	clock Clock,
) TransactionService {
	return &transactionService{
		db:         db,
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		receipts:   receipts,
		clock:      clock,
	}
}

// RecordPayment stores a payment dated today and prints its receipt.
// A receipt failure is logged and does not undo the payment.
func (s *transactionService) RecordPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	if err := validatePayment(&req); err != nil {
		return nil, err
	}

	exists, err := s.memberRepo.MemberExists(ctx, s.db, req.MemberID)
	if err != nil {
		return nil, storageError("recording payment", err)
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	txn := &models.Transaction{
		MemberID:   req.MemberID,
		AmountPaid: req.Amount,
		Date:       models.FormatDate(s.clock.Now()),
	}
	if _, err := s.txnRepo.CreateTransaction(ctx, s.db, txn); err != nil {
		return nil, storageError("recording payment", err)
	}

	metrics.RecordPayment(req.Method, req.Amount.InexactFloat64())
	utils.LogInfo("Payment recorded", map[string]interface{}{
		"transaction_id": txn.ID,
		"member_id":      txn.MemberID,
		"amount":         txn.AmountPaid.StringFixed(2),
		"method":         req.Method,
	})

	result := &PaymentResult{Transaction: txn}
	if s.receipts != nil {
		receipt, err := s.receipts.GenerateReceipt(ctx, req)
		if err != nil {
			utils.LogError(err, "Payment recorded but receipt could not be generated", map[string]interface{}{"transaction_id": txn.ID})
		} else {
			result.Receipt = receipt
		}
	}
	return result, nil
}

// ListTransactions returns the latest payments, newest date first.
func (s *transactionService) ListTransactions(ctx context.Context, limit int) ([]models.TransactionRecord, error) {
	records, err := s.txnRepo.ListRecent(ctx, s.db, clampLimit(limit))
	if err != nil {
		return nil, storageError("listing transactions", err)
	}
	return records, nil
}

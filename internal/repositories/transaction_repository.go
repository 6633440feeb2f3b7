package repositories

import (
	"context"

	"gym_frontdesk_backend/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines the interface for payment storage.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, exec SQLExecutor, tx *models.Transaction) (int64, error)
	ListRecent(ctx context.Context, exec SQLExecutor, limit int) ([]models.TransactionRecord, error)
	SumBetween(ctx context.Context, exec SQLExecutor, fromDate, toDate string) (decimal.Decimal, error)
	CountByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int, error)
	DeleteByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int64, error)
}

type transactionRepository struct{}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{}
}

// CreateTransaction inserts a payment row.
func (r *transactionRepository) CreateTransaction(ctx context.Context, exec SQLExecutor, tx *models.Transaction) (int64, error) {
	query := exec.Rebind(`INSERT INTO transactions (member_id, amount_paid, date) VALUES (?, ?, ?) RETURNING id`)
	var id int64
	if err := exec.QueryRowxContext(ctx, query, tx.MemberID, tx.AmountPaid, tx.Date).Scan(&id); err != nil {
		return 0, classify(err, "creating transaction")
	}
	tx.ID = id
	return id, nil
}

// ListRecent returns the latest payments joined with the member name, newest date first.
func (r *transactionRepository) ListRecent(ctx context.Context, exec SQLExecutor, limit int) ([]models.TransactionRecord, error) {
	records := []models.TransactionRecord{}
	query := exec.Rebind(`SELECT t.id, t.member_id, t.amount_paid, t.date, COALESCE(m.name, '') AS member_name
		FROM transactions t
		JOIN members m ON t.member_id = m.id
		ORDER BY t.date DESC, t.id DESC
		LIMIT ?`)
	if err := sqlx.SelectContext(ctx, exec, &records, query, limit); err != nil {
		return nil, classify(err, "listing transactions")
	}
	return records, nil
}

// SumBetween totals the amounts dated within [fromDate, toDate], both inclusive.
func (r *transactionRepository) SumBetween(ctx context.Context, exec SQLExecutor, fromDate, toDate string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	query := exec.Rebind(`SELECT SUM(amount_paid) FROM transactions WHERE date >= ? AND date <= ?`)
	if err := sqlx.GetContext(ctx, exec, &total, query, fromDate, toDate); err != nil {
		return decimal.Zero, classify(err, "summing transactions")
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(2), nil
}

// CountByMember counts payments recorded for the member.
func (r *transactionRepository) CountByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int, error) {
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM transactions WHERE member_id = ?`)
	if err := sqlx.GetContext(ctx, exec, &count, query, memberID); err != nil {
		return 0, classify(err, "counting member transactions")
	}
	return count, nil
}

// DeleteByMember removes every payment of the member.
func (r *transactionRepository) DeleteByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int64, error) {
	res, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM transactions WHERE member_id = ?`), memberID)
	if err != nil {
		return 0, classify(err, "deleting member transactions")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify(err, "deleting member transactions")
	}
	return n, nil
}

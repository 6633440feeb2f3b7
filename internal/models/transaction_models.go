package models

import "github.com/shopspring/decimal"

// Payment methods accepted at the desk.
const (
	PaymentCash         = "Cash"
	PaymentCreditCard   = "Credit Card"
	PaymentDebitCard    = "Debit Card"
	PaymentBankTransfer = "Bank Transfer"
	PaymentMobile       = "Mobile Payment"

	// DefaultPaymentMethod is used when the desk does not name one.
	DefaultPaymentMethod = PaymentCreditCard
)

// Transaction is a payment recorded against a member.
type Transaction struct {
	ID         int64           `json:"id" db:"id"`
	MemberID   int64           `json:"member_id" db:"member_id"`
	AmountPaid decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	Date       string          `json:"date" db:"date"` // YYYY-MM-DD
}

// TransactionRecord is a transaction joined with its member's name.
type TransactionRecord struct {
	Transaction
	MemberName string `json:"member_name" db:"member_name"`
}

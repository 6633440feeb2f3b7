package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is a read-only snapshot of the desk counters, recomputed on every request.
type DashboardStats struct {
	TotalMembers       int             `json:"total_members"`
	ActiveToday        int             `json:"active_today"`
	MonthToDateRevenue decimal.Decimal `json:"month_to_date_revenue"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// Receipt is a formatted payment receipt.
type Receipt struct {
	Number         string          `json:"number"`
	MemberID       int64           `json:"member_id"`
	MemberCode     string          `json:"member_code"`
	MemberName     string          `json:"member_name"`
	Phone          string          `json:"phone"`
	MembershipType string          `json:"membership_type"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	IssuedAt       time.Time       `json:"issued_at"`
	ValidUntil     time.Time       `json:"valid_until"`
	FileName       string          `json:"file_name,omitempty"`
	Body           string          `json:"body"`
}

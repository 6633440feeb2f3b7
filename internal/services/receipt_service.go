package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gym_frontdesk_backend/internal/metrics"
	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Placeholders printed when the member cannot be found.
const (
	placeholderName  = "Unknown"
	placeholderValue = "N/A"
)

const (
	receiptDateLayout     = "Jan 02, 2006"
	receiptFileTimeLayout = "20060102_150405"
	receiptValidity       = 365 * 24 * time.Hour
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`========================================
{{.GymName}}
{{- with .GymAddress}}
{{.}}{{end}}
{{- with .GymPhone}}
Tel: {{.}}{{end}}
========================================
PAYMENT RECEIPT

Receipt No:      {{.Number}}
Date:            {{.IssuedAt}}

MEMBER DETAILS
Member ID:       {{.MemberCode}}
Name:            {{.MemberName}}
Phone:           {{.Phone}}
Membership:      {{.MembershipType}}

PAYMENT DETAILS
Amount Paid:     {{.Amount}}
Payment Method:  {{.PaymentMethod}}
Valid Until:     {{.ValidUntil}}
========================================
Thank you for your payment!
`))

// ReceiptConfig controls the receipt header and where receipt files are written.
// An empty Dir keeps receipts in memory only.
type ReceiptConfig struct {
	Dir        string
	GymName    string
	GymAddress string
	GymPhone   string
}

// PaymentRequest is used both to record a payment and to print a receipt for one.
// Receipts skip the member_id rule and print placeholders instead.
type PaymentRequest struct {
	MemberID int64           `json:"member_id" validate:"required,gt=0"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method" validate:"oneof=Cash 'Credit Card' 'Debit Card' 'Bank Transfer' 'Mobile Payment'"`
}

// --- ReceiptService Interface ---
type ReceiptService interface {
	GenerateReceipt(ctx context.Context, req PaymentRequest) (*models.Receipt, error)
}

// --- receiptService Implementation ---
type receiptService struct {
	db         *sqlx.DB
	memberRepo repositories.MemberRepository
	clock      Clock
	cfg        ReceiptConfig
	intN       func(n int) int
}

// NewReceiptService creates a new instance of ReceiptService.
func NewReceiptService(db *sqlx.DB, memberRepo repositories.MemberRepository, clock Clock, cfg ReceiptConfig) ReceiptService {
	return newReceiptService(db, memberRepo, clock, cfg, rand.Intn)
}

func newReceiptService(db *sqlx.DB, memberRepo repositories.MemberRepository, clock Clock, cfg ReceiptConfig, intN func(n int) int) *receiptService {
	return &receiptService{db: db, memberRepo: memberRepo, clock: clock, cfg: cfg, intN: intN}
}

type receiptView struct {
	GymName        string
	GymAddress     string
	GymPhone       string
	Number         string
	IssuedAt       string
	MemberCode     string
	MemberName     string
	Phone          string
	MembershipType string
	Amount         string
	PaymentMethod  string
	ValidUntil     string
}

// GenerateReceipt formats a receipt and writes it to the receipt directory.
// A member that cannot be looked up, including a zero id, is printed with placeholders instead of failing.
func (s *receiptService) GenerateReceipt(ctx context.Context, req PaymentRequest) (*models.Receipt, error) {
	if err := validatePayment(&req, "MemberID"); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	receipt := &models.Receipt{
		Number:         fmt.Sprintf("GF-%d-%04d", now.Year(), s.intN(9999)+1),
		MemberID:       req.MemberID,
		MemberCode:     fmt.Sprintf("GF-%04d", req.MemberID),
		MemberName:     placeholderName,
		Phone:          placeholderValue,
		MembershipType: placeholderValue,
		Amount:         req.Amount,
		PaymentMethod:  req.Method,
		IssuedAt:       now,
		ValidUntil:     now.Add(receiptValidity),
	}

	member, err := s.memberRepo.GetMemberByID(ctx, s.db, req.MemberID)
	switch {
	case err == nil:
		receipt.MemberName = member.Name
		receipt.Phone = member.Phone
		receipt.MembershipType = member.MembershipType
	case errors.Is(err, repositories.ErrNotFound):
		utils.LogDebug("Receipt for unknown member", map[string]interface{}{"member_id": req.MemberID})
	default:
		utils.LogWarn("Receipt member lookup failed, printing placeholders", map[string]interface{}{"member_id": req.MemberID, "error": err.Error()})
	}

	body, err := s.render(receipt)
	if err != nil {
		metrics.RecordReceipt("failed")
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}
	receipt.Body = body

	if s.cfg.Dir != "" {
		receipt.FileName = fmt.Sprintf("receipt_%d_%s.txt", req.MemberID, now.Format(receiptFileTimeLayout))
		if err := s.write(receipt); err != nil {
			metrics.RecordReceipt("failed")
			return nil, err
		}
	}

	metrics.RecordReceipt("generated")
	utils.LogInfo("Receipt generated", map[string]interface{}{"receipt": receipt.Number, "member_id": req.MemberID, "file": receipt.FileName})
	return receipt, nil
}

func (s *receiptService) render(r *models.Receipt) (string, error) {
	view := receiptView{
		GymName:        s.cfg.GymName,
		GymAddress:     s.cfg.GymAddress,
		GymPhone:       s.cfg.GymPhone,
		Number:         r.Number,
		IssuedAt:       r.IssuedAt.Format(receiptDateLayout),
		MemberCode:     r.MemberCode,
		MemberName:     r.MemberName,
		Phone:          r.Phone,
		MembershipType: r.MembershipType,
		Amount:         "$" + r.Amount.StringFixed(2),
		PaymentMethod:  r.PaymentMethod,
		ValidUntil:     r.ValidUntil.Format(receiptDateLayout),
	}
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *receiptService) write(r *models.Receipt) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("creating receipt directory: %w", err)
	}
	path := filepath.Join(s.cfg.Dir, r.FileName)
	if err := os.WriteFile(path, []byte(r.Body), 0o644); err != nil {
		return fmt.Errorf("writing receipt %s: %w", path, err)
	}
	return nil
}

// validatePayment normalises the method and checks the amount is a positive value in cents.
// Fields named in except are not validated.
func validatePayment(req *PaymentRequest, except ...string) error {
	req.Method = strings.TrimSpace(req.Method)
	if req.Method == "" {
		req.Method = models.DefaultPaymentMethod
	}
	if err := validateStruct(req, except...); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return newValidationError("amount", "amount must be a positive number")
	}
	if !req.Amount.Equal(req.Amount.Round(2)) {
		return newValidationError("amount", "amount must have at most two decimal places")
	}
	return nil
}

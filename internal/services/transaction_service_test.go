package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gym_frontdesk_backend/internal/metrics"
	"gym_frontdesk_backend/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment_RejectsBadAmounts(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	for _, amount := range []string{"0", "-10", "12.345"} {
		t.Run(amount, func(t *testing.T) {
			_, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.RequireFromString(amount)})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	records, err := env.payments.ListTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordPayment_RejectsUnlistedMethod(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	_, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.NewFromInt(10), Method: models.PaymentBankTransfer})
	require.NoError(t, err)
	before := testutil.CollectAndCount(metrics.PaymentsTotal)

	for _, method := range []string{"free text", "cash", "Credit  Card", "Venmo"} {
		_, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.NewFromInt(10), Method: method})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, method)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "method", verr.Fields[0].Field)
		assert.Equal(t, "method must be one of: Cash, Credit Card, Debit Card, Bank Transfer, Mobile Payment", verr.Fields[0].Message)
	}

	assert.Equal(t, before, testutil.CollectAndCount(metrics.PaymentsTotal))

	records, err := env.payments.ListTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordPayment_RequiresMemberID(t *testing.T) {
	env := defaultPolicyEnv(t)

	_, err := env.payments.RecordPayment(context.Background(), PaymentRequest{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordPayment_UnknownMember(t *testing.T) {
	env := defaultPolicyEnv(t)

	_, err := env.payments.RecordPayment(context.Background(), PaymentRequest{MemberID: 77, Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRecordPayment_StoresAndPrintsReceipt(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	result, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.RequireFromString("49.99"), Method: "Cash"})
	require.NoError(t, err)

	assert.Greater(t, result.Transaction.ID, int64(0))
	assert.Equal(t, "2024-03-15", result.Transaction.Date)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "Cash", result.Receipt.PaymentMethod)

	body, err := os.ReadFile(filepath.Join(env.receiptDir, result.Receipt.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(body), "$49.99")
}

func TestRecordPayment_DefaultsMethod(t *testing.T) {
	env := defaultPolicyEnv(t)
	id := env.register(t, "Alice", models.PlanMonthly)

	result, err := env.payments.RecordPayment(context.Background(), PaymentRequest{MemberID: id, Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, models.DefaultPaymentMethod, result.Receipt.PaymentMethod)
}

func TestListTransactions_NewestDateThenID(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	env.clock.Set(at("2024-03-10 12:00:00"))
	older, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	env.clock.Set(at("2024-03-12 12:00:00"))
	first, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.NewFromInt(20)})
	require.NoError(t, err)
	env.clock.Advance(time.Hour)
	second, err := env.payments.RecordPayment(ctx, PaymentRequest{MemberID: id, Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)

	records, err := env.payments.ListTransactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, second.Transaction.ID, records[0].ID)
	assert.Equal(t, first.Transaction.ID, records[1].ID)
	assert.Equal(t, older.Transaction.ID, records[2].ID)
	assert.Equal(t, "Alice", records[0].MemberName)
	assert.True(t, records[0].AmountPaid.Equal(decimal.NewFromInt(30)))
}

package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gym_frontdesk_backend/internal/config"
	"gym_frontdesk_backend/internal/database"
	"gym_frontdesk_backend/internal/repositories"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable Clock for deterministic day and month windows.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Set(t time.Time)         { c.now = t }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func at(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

type testEnv struct {
	db         *sqlx.DB
	clock      *fakeClock
	members    MemberService
	attendance AttendanceService
	payments   TransactionService
	dashboard  DashboardService
	receipts   ReceiptService
	auth       AuthService
	receiptDir string
	memberRepo repositories.MemberRepository
	attRepo    repositories.AttendanceRepository
	txnRepo    repositories.TransactionRepository
	staffRepo  repositories.StaffRepository
}

func newTestEnv(t *testing.T, deletePolicy string) *testEnv {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	db, err := database.Open(ctx, database.DriverSQLite, filepath.Join(dir, "gym.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.InitSchema(ctx, db))

	env := &testEnv{
		db:         db,
		clock:      &fakeClock{now: at("2024-03-15 09:00:00")},
		receiptDir: filepath.Join(dir, "receipts"),
		memberRepo: repositories.NewMemberRepository(),
		attRepo:    repositories.NewAttendanceRepository(),
		txnRepo:    repositories.NewTransactionRepository(),
		staffRepo:  repositories.NewStaffRepository(),
	}
	env.members = NewMemberService(db, env.memberRepo, env.attRepo, env.txnRepo, deletePolicy)
	env.attendance = NewAttendanceService(db, env.memberRepo, env.attRepo, env.clock)
	env.receipts = newReceiptService(db, env.memberRepo, env.clock, ReceiptConfig{
		Dir:     env.receiptDir,
		GymName: "ARIF X MAINUL GYM",
	}, func(int) int { return 41 })
	env.payments = NewTransactionService(db, env.memberRepo, env.txnRepo, env.receipts, env.clock)
	env.dashboard = NewDashboardService(db, env.memberRepo, env.attRepo, env.txnRepo, env.clock)
	env.auth = NewAuthService(db, env.staffRepo, env.clock, "test-secret", time.Hour)
	return env
}

func defaultPolicyEnv(t *testing.T) *testEnv {
	return newTestEnv(t, config.DeletePolicyOrphan)
}

func validMember(name, plan string) RegisterMemberRequest {
	return RegisterMemberRequest{
		Name:           name,
		Age:            30,
		Gender:         "Female",
		Phone:          "555-0100",
		Address:        "1 Main St",
		MembershipType: plan,
		StartDate:      "2024-03-01",
		EndDate:        "2024-04-01",
	}
}

func (e *testEnv) register(t *testing.T, name, plan string) int64 {
	t.Helper()
	m, err := e.members.RegisterMember(context.Background(), validMember(name, plan))
	require.NoError(t, err)
	return m.ID
}

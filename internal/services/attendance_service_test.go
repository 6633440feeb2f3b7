package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn_UnknownMember(t *testing.T) {
	env := defaultPolicyEnv(t)

	_, err := env.attendance.CheckIn(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCheckIn_TwiceSameDay(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	session, err := env.attendance.CheckIn(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15 09:00:00", session.CheckinTime)
	assert.True(t, session.IsOpen())

	env.clock.Advance(2 * time.Hour)
	_, err = env.attendance.CheckIn(ctx, id)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	count, err := env.attRepo.CountByMember(ctx, env.db, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCheckIn_AgainAfterCheckOut(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	_, err := env.attendance.CheckIn(ctx, id)
	require.NoError(t, err)
	env.clock.Advance(time.Hour)
	_, err = env.attendance.CheckOut(ctx, id)
	require.NoError(t, err)

	env.clock.Advance(3 * time.Hour)
	_, err = env.attendance.CheckIn(ctx, id)
	assert.NoError(t, err)
}

func TestCheckIn_OpenSessionFromYesterdayDoesNotBlock(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	env.clock.Set(at("2024-03-14 22:00:00"))
	_, err := env.attendance.CheckIn(ctx, id)
	require.NoError(t, err)

	env.clock.Set(at("2024-03-15 06:00:00"))
	_, err = env.attendance.CheckIn(ctx, id)
	require.NoError(t, err)

	// Yesterday's session cannot be closed from today.
	_, err = env.attendance.CheckOut(ctx, id)
	require.NoError(t, err)
	_, err = env.attendance.CheckOut(ctx, id)
	assert.ErrorIs(t, err, ErrNoOpenSession)
}

// staleGuardRepo never sees an open session, like a desk whose guard read raced another insert.
type staleGuardRepo struct {
	repositories.AttendanceRepository
}

func (staleGuardRepo) FindOpenSession(context.Context, repositories.SQLExecutor, int64, string, string) (*models.AttendanceSession, error) {
	return nil, repositories.ErrNotFound
}

func TestCheckIn_RacedInsertRejectedByIndex(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	attendance := NewAttendanceService(env.db, env.memberRepo, staleGuardRepo{env.attRepo}, env.clock)

	_, err := attendance.CheckIn(ctx, id)
	require.NoError(t, err)
	_, err = attendance.CheckIn(ctx, id)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	count, err := env.attRepo.CountByMember(ctx, env.db, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCheckIn_Concurrent(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.attendance.CheckIn(ctx, id); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	count, err := env.attRepo.CountByMember(ctx, env.db, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCheckOut_WithoutSession(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	_, err := env.attendance.CheckOut(ctx, id)
	assert.ErrorIs(t, err, ErrNoOpenSession)

	_, err = env.attendance.CheckOut(ctx, 404)
	assert.ErrorIs(t, err, ErrNoOpenSession)
}

func TestCheckOut_StampsTimeAndDuration(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	id := env.register(t, "Alice", models.PlanMonthly)

	_, err := env.attendance.CheckIn(ctx, id)
	require.NoError(t, err)

	env.clock.Advance(45*time.Minute + 59*time.Second)
	session, err := env.attendance.CheckOut(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, session.CheckoutTime)
	assert.Equal(t, "2024-03-15 09:45:59", *session.CheckoutTime)

	records, err := env.attendance.ListAttendance(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].MemberName)
	assert.Equal(t, "45 min", records[0].Duration)
	require.NotNil(t, records[0].DurationMinutes)
	assert.Equal(t, 45, *records[0].DurationMinutes)
}

func TestListAttendance_NewestFirstAndLimit(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()
	alice := env.register(t, "Alice", models.PlanMonthly)
	bob := env.register(t, "Bob", models.PlanMonthly)

	_, err := env.attendance.CheckIn(ctx, alice)
	require.NoError(t, err)
	env.clock.Advance(10 * time.Minute)
	_, err = env.attendance.CheckIn(ctx, bob)
	require.NoError(t, err)

	records, err := env.attendance.ListAttendance(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Bob", records[0].MemberName)
	assert.Equal(t, models.SessionStatusActive, records[0].Duration)
	assert.Equal(t, "Alice", records[1].MemberName)

	limited, err := env.attendance.ListAttendance(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Bob", limited[0].MemberName)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, clampLimit(0))
	assert.Equal(t, DefaultListLimit, clampLimit(-5))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, MaxListLimit, clampLimit(MaxListLimit+1))
}

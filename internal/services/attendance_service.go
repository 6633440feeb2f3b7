package services

import (
	"context"
	"errors"

	"gym_frontdesk_backend/internal/metrics"
	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
)

// Listing limits for the desk tables.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// --- AttendanceService Interface ---
type AttendanceService interface {
	CheckIn(ctx context.Context, memberID int64) (*models.AttendanceSession, error)
	CheckOut(ctx context.Context, memberID int64) (*models.AttendanceSession, error)
	ListAttendance(ctx context.Context, limit int) ([]models.AttendanceRecord, error)
}

// --- attendanceService Implementation ---
type attendanceService struct {
	db             *sqlx.DB
	memberRepo     repositories.MemberRepository
	attendanceRepo repositories.AttendanceRepository
	clock          Clock
}

// NewAttendanceService creates a new instance of AttendanceService.
func NewAttendanceService(
	db *sqlx.DB,
	memberRepo repositories.MemberRepository,
	attendanceRepo repositories.AttendanceRepository,
	clock Clock,
) AttendanceService {
	return &attendanceService{
		db:             db,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
	}
}

// CheckIn opens a session for the member unless one is already open today.
// The guard and the insert share a transaction; the open-session unique index
// rejects a concurrent insert that passed the guard on another connection.
func (s *attendanceService) CheckIn(ctx context.Context, memberID int64) (*models.AttendanceSession, error) {
	now := s.clock.Now()
	dayStart, dayEnd := models.DayBounds(now)
	session := &models.AttendanceSession{MemberID: memberID, CheckinTime: models.FormatTimestamp(now)}

	err := withTx(ctx, s.db, "checking in", func(exec repositories.SQLExecutor) error {
		exists, err := s.memberRepo.MemberExists(ctx, exec, memberID)
		if err != nil {
			return storageError("checking in", err)
		}
		if !exists {
			return ErrMemberNotFound
		}

		_, err = s.attendanceRepo.FindOpenSession(ctx, exec, memberID, dayStart, dayEnd)
		if err == nil {
			return ErrAlreadyCheckedIn
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return storageError("checking in", err)
		}

		id, err := s.attendanceRepo.CreateSession(ctx, exec, memberID, session.CheckinTime)
		if err != nil {
			// Another desk opened the session between the guard and the insert.
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return ErrAlreadyCheckedIn
			}
			return storageError("checking in", err)
		}
		session.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn()
	utils.LogInfo("Member checked in", map[string]interface{}{"member_id": memberID, "session_id": session.ID})
	return session, nil
}

// CheckOut closes the member's open session from today.
func (s *attendanceService) CheckOut(ctx context.Context, memberID int64) (*models.AttendanceSession, error) {
	now := s.clock.Now()
	dayStart, dayEnd := models.DayBounds(now)
	checkout := models.FormatTimestamp(now)

	var session *models.AttendanceSession
	err := withTx(ctx, s.db, "checking out", func(exec repositories.SQLExecutor) error {
		open, err := s.attendanceRepo.FindOpenSession(ctx, exec, memberID, dayStart, dayEnd)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrNoOpenSession
			}
			return storageError("checking out", err)
		}

		if err := s.attendanceRepo.CloseSession(ctx, exec, open.ID, checkout); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrNoOpenSession
			}
			return storageError("checking out", err)
		}
		open.CheckoutTime = &checkout
		session = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckOut()
	utils.LogInfo("Member checked out", map[string]interface{}{"member_id": memberID, "session_id": session.ID})
	return session, nil
}

// ListAttendance returns the latest sessions with derived durations.
func (s *attendanceService) ListAttendance(ctx context.Context, limit int) ([]models.AttendanceRecord, error) {
	records, err := s.attendanceRepo.ListRecent(ctx, s.db, clampLimit(limit))
	if err != nil {
		return nil, storageError("listing attendance", err)
	}
	return records, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

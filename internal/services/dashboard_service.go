package services

import (
	"context"

	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"

	"github.com/jmoiron/sqlx"
)

// --- DashboardService Interface ---
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	db             *sqlx.DB
	memberRepo     repositories.MemberRepository
	attendanceRepo repositories.AttendanceRepository
	txnRepo        repositories.TransactionRepository
	clock          Clock
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(
	db *sqlx.DB,
	memberRepo repositories.MemberRepository,
	attendanceRepo repositories.AttendanceRepository,
	txnRepo repositories.TransactionRepository,
	clock Clock,
) DashboardService {
	return &dashboardService{
		db:             db,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		txnRepo:        txnRepo,
		clock:          clock,
	}
}

// GetStats recomputes the desk counters. Nothing is cached between calls.
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	now := s.clock.Now()
	dayStart, dayEnd := models.DayBounds(now)

	total, err := s.memberRepo.CountMembers(ctx, s.db)
	if err != nil {
		return nil, storageError("counting members", err)
	}
	active, err := s.attendanceRepo.CountOpenSessions(ctx, s.db, dayStart, dayEnd)
	if err != nil {
		return nil, storageError("counting active sessions", err)
	}
	revenue, err := s.txnRepo.SumBetween(ctx, s.db, models.MonthStart(now), models.FormatDate(now))
	if err != nil {
		return nil, storageError("summing revenue", err)
	}

	return &models.DashboardStats{
		TotalMembers:       total,
		ActiveToday:        active,
		MonthToDateRevenue: revenue,
		GeneratedAt:        now,
	}, nil
}

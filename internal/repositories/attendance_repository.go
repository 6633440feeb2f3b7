package repositories

import (
	"context"

	"gym_frontdesk_backend/internal/models"

	"github.com/jmoiron/sqlx"
)

// AttendanceRepository defines the interface for attendance session storage.
// Day windows are half-open text ranges [dayStart, dayEnd) over checkin_time.
type AttendanceRepository interface {
	FindOpenSession(ctx context.Context, exec SQLExecutor, memberID int64, dayStart, dayEnd string) (*models.AttendanceSession, error)
	CreateSession(ctx context.Context, exec SQLExecutor, memberID int64, checkinTime string) (int64, error)
	CloseSession(ctx context.Context, exec SQLExecutor, sessionID int64, checkoutTime string) error
	ListRecent(ctx context.Context, exec SQLExecutor, limit int) ([]models.AttendanceRecord, error)
	CountOpenSessions(ctx context.Context, exec SQLExecutor, dayStart, dayEnd string) (int, error)
	CountByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int, error)
	DeleteByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int64, error)
}

type attendanceRepository struct{}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{}
}

// FindOpenSession returns the member's session checked in during the day window and not yet closed.
func (r *attendanceRepository) FindOpenSession(ctx context.Context, exec SQLExecutor, memberID int64, dayStart, dayEnd string) (*models.AttendanceSession, error) {
	session := &models.AttendanceSession{}
	query := exec.Rebind(`SELECT id, member_id, checkin_time, checkout_time
		FROM attendance
		WHERE member_id = ? AND checkin_time >= ? AND checkin_time < ? AND checkout_time IS NULL
		ORDER BY checkin_time DESC, id DESC
		LIMIT 1`)
	if err := sqlx.GetContext(ctx, exec, session, query, memberID, dayStart, dayEnd); err != nil {
		return nil, classify(err, "finding open session")
	}
	return session, nil
}

// CreateSession inserts an open session.
func (r *attendanceRepository) CreateSession(ctx context.Context, exec SQLExecutor, memberID int64, checkinTime string) (int64, error) {
	query := exec.Rebind(`INSERT INTO attendance (member_id, checkin_time, checkout_time) VALUES (?, ?, NULL) RETURNING id`)
	var id int64
	if err := exec.QueryRowxContext(ctx, query, memberID, checkinTime).Scan(&id); err != nil {
		return 0, classify(err, "creating attendance session")
	}
	return id, nil
}

// CloseSession stamps the check-out time on an open session.
func (r *attendanceRepository) CloseSession(ctx context.Context, exec SQLExecutor, sessionID int64, checkoutTime string) error {
	query := exec.Rebind(`UPDATE attendance SET checkout_time = ? WHERE id = ? AND checkout_time IS NULL`)
	res, err := exec.ExecContext(ctx, query, checkoutTime, sessionID)
	if err != nil {
		return classify(err, "closing attendance session")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err, "closing attendance session")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent returns the latest sessions joined with the member name.
// Sessions whose member no longer exists are dropped by the inner join.
func (r *attendanceRepository) ListRecent(ctx context.Context, exec SQLExecutor, limit int) ([]models.AttendanceRecord, error) {
	records := []models.AttendanceRecord{}
	query := exec.Rebind(`SELECT a.id, a.member_id, a.checkin_time, a.checkout_time, COALESCE(m.name, '') AS member_name
		FROM attendance a
		JOIN members m ON a.member_id = m.id
		ORDER BY a.checkin_time DESC, a.id DESC
		LIMIT ?`)
	if err := sqlx.SelectContext(ctx, exec, &records, query, limit); err != nil {
		return nil, classify(err, "listing attendance")
	}
	for i := range records {
		records[i].Resolve()
	}
	return records, nil
}

// CountOpenSessions counts sessions checked in during the window that are still open.
func (r *attendanceRepository) CountOpenSessions(ctx context.Context, exec SQLExecutor, dayStart, dayEnd string) (int, error) {
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM attendance
		WHERE checkin_time >= ? AND checkin_time < ? AND checkout_time IS NULL`)
	if err := sqlx.GetContext(ctx, exec, &count, query, dayStart, dayEnd); err != nil {
		return 0, classify(err, "counting open sessions")
	}
	return count, nil
}

// CountByMember counts every session recorded for the member.
func (r *attendanceRepository) CountByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int, error) {
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM attendance WHERE member_id = ?`)
	if err := sqlx.GetContext(ctx, exec, &count, query, memberID); err != nil {
		return 0, classify(err, "counting member sessions")
	}
	return count, nil
}

// DeleteByMember removes every session of the member.
func (r *attendanceRepository) DeleteByMember(ctx context.Context, exec SQLExecutor, memberID int64) (int64, error) {
	res, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM attendance WHERE member_id = ?`), memberID)
	if err != nil {
		return 0, classify(err, "deleting member sessions")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify(err, "deleting member sessions")
	}
	return n, nil
}

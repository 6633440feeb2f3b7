package database

import (
	"context"
	"fmt"

	"gym_frontdesk_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
)

// Date and time columns are TEXT on both dialects ("YYYY-MM-DD HH:MM:SS" / "YYYY-MM-DD")
// so range filters compare lexically the same way everywhere.
// openSessionIndex allows at most one open session per member per check-in day.
// Both dialects accept the same partial expression index.
const openSessionIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ux_attendance_open_per_day
	ON attendance (member_id, substr(checkin_time, 1, 10))
	WHERE checkout_time IS NULL`

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		age INTEGER,
		gender TEXT,
		phone TEXT,
		address TEXT,
		membership_type TEXT,
		start_date TEXT,
		end_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER,
		checkin_time TEXT,
		checkout_time TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER,
		amount_paid REAL,
		date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS staff_users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_member_checkin ON attendance (member_id, checkin_time)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date)`,
	openSessionIndex,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		age INTEGER,
		gender TEXT,
		phone TEXT,
		address TEXT,
		membership_type TEXT,
		start_date TEXT,
		end_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id BIGSERIAL PRIMARY KEY,
		member_id BIGINT,
		checkin_time TEXT,
		checkout_time TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		member_id BIGINT,
		amount_paid NUMERIC(12,2),
		date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS staff_users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_member_checkin ON attendance (member_id, checkin_time)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date)`,
	openSessionIndex,
}

// Statements returns the schema DDL for the given driver.
func Statements(driver string) ([]string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}
}

// InitSchema creates every table and index that does not exist yet.
// It is idempotent and safe to call on every start; existing data is never touched.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	stmts, err := Statements(db.DriverName())
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute schema statement: %w", err)
		}
	}
	utils.LogInfo("Database schema ensured", map[string]interface{}{"statements": len(stmts)})
	return nil
}

package repositories

import (
	"context"

	"gym_frontdesk_backend/internal/models"

	"github.com/jmoiron/sqlx"
)

// StaffRepository defines the interface for front-desk account storage.
type StaffRepository interface {
	CreateUser(ctx context.Context, exec SQLExecutor, user *models.StaffUser) (int64, error)
	FindUserByUsername(ctx context.Context, exec SQLExecutor, username string) (*models.StaffUser, error)
	FindUserByID(ctx context.Context, exec SQLExecutor, id int64) (*models.StaffUser, error)
}

type staffRepository struct{}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository() StaffRepository {
	return &staffRepository{}
}

// CreateUser inserts a staff account. user.PasswordHash must already be hashed.
func (r *staffRepository) CreateUser(ctx context.Context, exec SQLExecutor, user *models.StaffUser) (int64, error) {
	query := exec.Rebind(`INSERT INTO staff_users (username, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, classify(err, "creating staff user")
	}
	user.ID = id
	return id, nil
}

// FindUserByUsername retrieves an account, including its password hash, by username.
func (r *staffRepository) FindUserByUsername(ctx context.Context, exec SQLExecutor, username string) (*models.StaffUser, error) {
	user := &models.StaffUser{}
	query := exec.Rebind(`SELECT id, username, password_hash, role, is_active, created_at
		FROM staff_users WHERE username = ?`)
	if err := sqlx.GetContext(ctx, exec, user, query, username); err != nil {
		return nil, classify(err, "finding staff user by username")
	}
	return user, nil
}

// FindUserByID retrieves an account by id.
func (r *staffRepository) FindUserByID(ctx context.Context, exec SQLExecutor, id int64) (*models.StaffUser, error) {
	user := &models.StaffUser{}
	query := exec.Rebind(`SELECT id, username, password_hash, role, is_active, created_at
		FROM staff_users WHERE id = ?`)
	if err := sqlx.GetContext(ctx, exec, user, query, id); err != nil {
		return nil, classify(err, "finding staff user by id")
	}
	return user, nil
}

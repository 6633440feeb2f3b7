package repositories

import (
	"context"

	"gym_frontdesk_backend/internal/models"

	"github.com/jmoiron/sqlx"
)

// MemberRepository defines the interface for member-related database operations.
type MemberRepository interface {
	CreateMember(ctx context.Context, exec SQLExecutor, member *models.Member) (int64, error)
	GetMemberByID(ctx context.Context, exec SQLExecutor, id int64) (*models.Member, error)
	ListMembers(ctx context.Context, exec SQLExecutor) ([]models.Member, error)
	MemberExists(ctx context.Context, exec SQLExecutor, id int64) (bool, error)
	DeleteMember(ctx context.Context, exec SQLExecutor, id int64) (int64, error)
	CountMembers(ctx context.Context, exec SQLExecutor) (int, error)
}

type memberRepository struct{}

// NewMemberRepository creates a new instance of MemberRepository.
func NewMemberRepository() MemberRepository {
	return &memberRepository{}
}

const memberColumns = `id, COALESCE(name, '') AS name, COALESCE(age, 0) AS age, COALESCE(gender, '') AS gender,
	COALESCE(phone, '') AS phone, COALESCE(address, '') AS address,
	COALESCE(membership_type, '') AS membership_type,
	COALESCE(start_date, '') AS start_date, COALESCE(end_date, '') AS end_date`

// CreateMember inserts a new member and returns the store-assigned id.
func (r *memberRepository) CreateMember(ctx context.Context, exec SQLExecutor, member *models.Member) (int64, error) {
	query := exec.Rebind(`INSERT INTO members (name, age, gender, phone, address, membership_type, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		member.Name, member.Age, member.Gender, member.Phone, member.Address,
		member.MembershipType, member.StartDate, member.EndDate,
	).Scan(&id)
	if err != nil {
		return 0, classify(err, "creating member")
	}
	member.ID = id
	return id, nil
}

// GetMemberByID retrieves a member by id.
func (r *memberRepository) GetMemberByID(ctx context.Context, exec SQLExecutor, id int64) (*models.Member, error) {
	member := &models.Member{}
	query := exec.Rebind(`SELECT ` + memberColumns + ` FROM members WHERE id = ?`)
	if err := sqlx.GetContext(ctx, exec, member, query, id); err != nil {
		return nil, classify(err, "getting member")
	}
	return member, nil
}

// ListMembers returns every member, newest registration first.
func (r *memberRepository) ListMembers(ctx context.Context, exec SQLExecutor) ([]models.Member, error) {
	members := []models.Member{}
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY id DESC`
	if err := sqlx.SelectContext(ctx, exec, &members, query); err != nil {
		return nil, classify(err, "listing members")
	}
	return members, nil
}

// MemberExists reports whether a member with the id is stored.
func (r *memberRepository) MemberExists(ctx context.Context, exec SQLExecutor, id int64) (bool, error) {
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM members WHERE id = ?`)
	if err := sqlx.GetContext(ctx, exec, &count, query, id); err != nil {
		return false, classify(err, "checking member")
	}
	return count > 0, nil
}

// DeleteMember removes the member row and returns the number of rows removed.
// Deleting an unknown id removes nothing and is not an error.
func (r *memberRepository) DeleteMember(ctx context.Context, exec SQLExecutor, id int64) (int64, error) {
	res, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM members WHERE id = ?`), id)
	if err != nil {
		return 0, classify(err, "deleting member")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify(err, "deleting member")
	}
	return n, nil
}

// CountMembers returns the total number of members.
func (r *memberRepository) CountMembers(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, exec, &count, `SELECT COUNT(*) FROM members`); err != nil {
		return 0, classify(err, "counting members")
	}
	return count, nil
}

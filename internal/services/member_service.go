package services

import (
	"context"
	"errors"
	"strings"

	"gym_frontdesk_backend/internal/config"
	"gym_frontdesk_backend/internal/metrics"
	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
)

// --- Member DTOs ---

// RegisterMemberRequest carries the registration form. Every field is required.
type RegisterMemberRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"required,gt=0,lte=150"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	MembershipType string `json:"membership_type" validate:"required,oneof=Monthly Quarterly Yearly Lifetime"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// --- MemberService Interface ---
type MemberService interface {
	RegisterMember(ctx context.Context, req RegisterMemberRequest) (*models.Member, error)
	ListMembers(ctx context.Context, filter models.MemberFilter) ([]models.Member, error)
	GetMember(ctx context.Context, id int64) (*models.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

// --- memberService Implementation ---
type memberService struct {
	db             *sqlx.DB
	memberRepo     repositories.MemberRepository
	attendanceRepo repositories.AttendanceRepository
	txnRepo        repositories.TransactionRepository
	deletePolicy   string
}

// NewMemberService creates a new instance of MemberService.
// deletePolicy is one of the config.DeletePolicy* values; anything else behaves as orphan.
func NewMemberService(
	db *sqlx.DB,
	memberRepo repositories.MemberRepository,
	attendanceRepo repositories.AttendanceRepository,
	txnRepo repositories.TransactionRepository,
	deletePolicy string,
) MemberService {
	return &memberService{
		db:             db,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		txnRepo:        txnRepo,
		deletePolicy:   deletePolicy,
	}
}

// RegisterMember validates the form and stores a new member.
func (s *memberService) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*models.Member, error) {
	utils.TrimAll(&req.Name, &req.Gender, &req.Phone, &req.Address, &req.MembershipType, &req.StartDate, &req.EndDate)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.EndDate < req.StartDate {
		return nil, newValidationError("end_date", "end_date must not be before start_date")
	}

	member := &models.Member{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Address:        req.Address,
		MembershipType: req.MembershipType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if _, err := s.memberRepo.CreateMember(ctx, s.db, member); err != nil {
		return nil, storageError("registering member", err)
	}

	metrics.RecordMemberRegistered(member.MembershipType)
	utils.LogInfo("Member registered", map[string]interface{}{"member_id": member.ID, "plan": member.MembershipType})
	return member, nil
}

// ListMembers returns members newest first, narrowed by name substring and plan.
func (s *memberService) ListMembers(ctx context.Context, filter models.MemberFilter) ([]models.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx, s.db)
	if err != nil {
		return nil, storageError("listing members", err)
	}

	search := strings.TrimSpace(filter.Search)
	plan := strings.TrimSpace(filter.Plan)
	if search == "" && (plan == "" || plan == models.PlanAll) {
		return members, nil
	}

	filtered := make([]models.Member, 0, len(members))
	for _, m := range members {
		if search != "" && !utils.ContainsFold(m.Name, search) {
			continue
		}
		if plan != "" && plan != models.PlanAll && m.MembershipType != plan {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// GetMember returns one member by id.
func (s *memberService) GetMember(ctx context.Context, id int64) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, storageError("getting member", err)
	}
	return member, nil
}

// DeleteMember removes a member. Unknown ids are ignored.
// Attendance and payments are kept (orphan), block the delete (restrict) or go with it (cascade).
func (s *memberService) DeleteMember(ctx context.Context, id int64) error {
	var removed int64
	err := withTx(ctx, s.db, "deleting member", func(exec repositories.SQLExecutor) error {
		switch s.deletePolicy {
		case config.DeletePolicyRestrict:
			sessions, err := s.attendanceRepo.CountByMember(ctx, exec, id)
			if err != nil {
				return storageError("deleting member", err)
			}
			payments, err := s.txnRepo.CountByMember(ctx, exec, id)
			if err != nil {
				return storageError("deleting member", err)
			}
			if sessions > 0 || payments > 0 {
				return ErrMemberHasRecords
			}
		case config.DeletePolicyCascade:
			if _, err := s.attendanceRepo.DeleteByMember(ctx, exec, id); err != nil {
				return storageError("deleting member attendance", err)
			}
			if _, err := s.txnRepo.DeleteByMember(ctx, exec, id); err != nil {
				return storageError("deleting member transactions", err)
			}
		}

		n, err := s.memberRepo.DeleteMember(ctx, exec, id)
		if err != nil {
			if errors.Is(err, repositories.ErrReferenced) {
				return ErrMemberHasRecords
			}
			return storageError("deleting member", err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return err
	}

	if removed > 0 {
		metrics.RecordMemberDeleted()
		utils.LogInfo("Member deleted", map[string]interface{}{"member_id": id, "policy": s.deletePolicy})
	} else {
		utils.LogDebug("Delete requested for unknown member", map[string]interface{}{"member_id": id})
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_frontdesk_backend/internal/metrics"
	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/repositories"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Data Transfer Objects (DTOs) ---

// CreateStaffRequest DTO
type CreateStaffRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=Admin Staff"`
}

// AuthResponse DTO
type AuthResponse struct {
	User        *models.StaffUser `json:"user"`
	AccessToken string            `json:"access_token"`
	ExpiresIn   int64             `json:"expires_in"` // seconds
}

// --- AuthService Interface ---
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error)
	GetUserProfile(ctx context.Context, userID int64) (*models.StaffUser, error)
	CreateStaff(ctx context.Context, req CreateStaffRequest) (*models.StaffUser, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

// --- authService Implementation ---
type authService struct {
	db            *sqlx.DB
	staffRepo     repositories.StaffRepository
	clock         Clock
	jwtSecret     []byte
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(db *sqlx.DB, staffRepo repositories.StaffRepository, clock Clock, jwtSecret string, jwtExp time.Duration) AuthService {
	return &authService{
		db:            db,
		staffRepo:     staffRepo,
		clock:         clock,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExp,
	}
}

// Login checks the credentials and issues an access token.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := validateStruct(creds); err != nil {
		return nil, err
	}

	user, err := s.staffRepo.FindUserByUsername(ctx, s.db, creds.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.RecordLogin("rejected")
			return nil, ErrInvalidCredentials
		}
		return nil, storageError("login attempt failed", err)
	}

	if !user.IsActive {
		metrics.RecordLogin("rejected")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		metrics.RecordLogin("rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	metrics.RecordLogin("accepted")
	utils.LogInfo("Staff logged in", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return &AuthResponse{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.jwtExpiration.Seconds()),
	}, nil
}

// GetUserProfile retrieves a staff account by id.
func (s *authService) GetUserProfile(ctx context.Context, userID int64) (*models.StaffUser, error) {
	user, err := s.staffRepo.FindUserByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("getting staff profile", err)
	}
	return user, nil
}

// CreateStaff registers a new desk account.
func (s *authService) CreateStaff(ctx context.Context, req CreateStaffRequest) (*models.StaffUser, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.StaffUser{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    models.FormatTimestamp(s.clock.Now()),
	}
	if _, err := s.staffRepo.CreateUser(ctx, s.db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, storageError("creating staff user", err)
	}

	utils.LogInfo("Staff account created", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
// An empty password skips the bootstrap.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		utils.LogWarn("ADMIN_PASSWORD not set, skipping bootstrap admin", map[string]interface{}{"username": username})
		return nil
	}

	_, err := s.staffRepo.FindUserByUsername(ctx, s.db, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return storageError("looking up bootstrap admin", err)
	}

	_, err = s.CreateStaff(ctx, CreateStaffRequest{Username: username, Password: password, Role: models.RoleAdmin})
	if err != nil && !errors.Is(err, ErrUsernameExists) {
		return err
	}
	return nil
}

package services

import (
	"context"
	"testing"

	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdminAndLogin(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.EnsureAdmin(ctx, "admin", "correct-horse"))
	// Second start finds the account and leaves it alone.
	require.NoError(t, env.auth.EnsureAdmin(ctx, "admin", "another-password"))

	resp, err := env.auth.Login(ctx, models.Credentials{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := utils.ValidateToken([]byte("test-secret"), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	_, err = env.auth.Login(ctx, models.Credentials{Username: "admin", Password: "another-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdminWithoutPasswordSkips(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.EnsureAdmin(ctx, "admin", ""))
	_, err := env.auth.Login(ctx, models.Credentials{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Validation(t *testing.T) {
	env := defaultPolicyEnv(t)

	_, err := env.auth.Login(context.Background(), models.Credentials{Username: " ", Password: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateStaff(t *testing.T) {
	env := defaultPolicyEnv(t)
	ctx := context.Background()

	user, err := env.auth.CreateStaff(ctx, CreateStaffRequest{Username: "desk1", Password: "front-desk-1", Role: models.RoleStaff})
	require.NoError(t, err)
	assert.Greater(t, user.ID, int64(0))
	assert.True(t, user.IsActive)
	assert.Equal(t, "2024-03-15 09:00:00", user.CreatedAt)

	_, err = env.auth.CreateStaff(ctx, CreateStaffRequest{Username: "desk1", Password: "front-desk-2", Role: models.RoleStaff})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = env.auth.CreateStaff(ctx, CreateStaffRequest{Username: "desk2", Password: "short", Role: "Janitor"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)

	profile, err := env.auth.GetUserProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "desk1", profile.Username)

	_, err = env.auth.GetUserProfile(ctx, user.ID+10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

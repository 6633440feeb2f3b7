package handlers

import (
	"errors"
	"net/http"

	"gym_frontdesk_backend/internal/middleware"
	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils" // For APIError and error codes

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginUser handles staff login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.LogError(err, "LoginUser: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), creds)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			utils.LogError(err, "LoginUser: Error from authService.Login")
		}
		respondServiceError(c, err, "Failed to login.")
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// GetCurrentUser retrieves the profile of the currently authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userIDRaw, exists := c.Get(middleware.ContextUserID)
	if !exists {
		utils.LogError(errors.New("userID not found in context"), "GetCurrentUser: userID not in context")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", "Missing user ID in context"))
		return
	}

	userID, ok := userIDRaw.(int64)
	if !ok {
		utils.LogError(errors.New("userID is not of type int64"), "GetCurrentUser: userID type assertion failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User ID format incorrect.", "Invalid user ID format in context"))
		return
	}

	user, err := h.authService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		utils.LogError(err, "GetCurrentUser: Error from authService.GetUserProfile for userID "+utils.Int64ToStr(userID))
		respondServiceError(c, err, "Failed to retrieve user profile.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateStaff registers another desk account. Admin only.
func (h *AuthHandler) CreateStaff(c *gin.Context) {
	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStaff: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	user, err := h.authService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateStaff: Error from authService.CreateStaff")
		respondServiceError(c, err, "Failed to create staff account.")
		return
	}
	c.JSON(http.StatusCreated, user)
}

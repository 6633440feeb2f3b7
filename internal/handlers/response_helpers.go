package handlers

import (
	"errors"
	"net/http"

	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the API error envelope.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondValidationFailed(c, verr.Fields)
	case errors.Is(err, services.ErrValidation):
		utils.RespondValidationFailed(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
	case errors.Is(err, services.ErrUserNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User profile not found.", err.Error()))
	case errors.Is(err, services.ErrAlreadyCheckedIn):
		utils.RespondConflict(c, utils.ErrCodeAlreadyCheckedIn, "Member is already checked in today.", err.Error())
	case errors.Is(err, services.ErrNoOpenSession):
		utils.RespondConflict(c, utils.ErrCodeNoOpenSession, "Member has no open session today.", err.Error())
	case errors.Is(err, services.ErrMemberHasRecords):
		utils.RespondConflict(c, utils.ErrCodeMemberHasRecords, "Member still has attendance or payment records.", err.Error())
	case errors.Is(err, services.ErrUsernameExists):
		utils.RespondConflict(c, utils.ErrCodeConflict, "Username already exists.", err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password.", nil))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallbackMsg, "Internal error"))
	}
}

// respondBindError reports a request body that could not be decoded.
func respondBindError(c *gin.Context, err error) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
}

// parseIDParam reads a positive int64 path parameter, responding 400 when it is malformed.
func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	id, err := utils.StrToInt64(c.Param(name))
	if err != nil || id <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+label+" ID format.", c.Param(name)))
		return 0, false
	}
	return id, true
}

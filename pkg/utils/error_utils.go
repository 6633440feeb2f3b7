package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every failed desk API call, served under an "error" key.
type APIError struct {
	StatusCode int         `json:"-"`
	Code       string      `json:"code,omitempty"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes the desk UI switches on.
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeAlreadyCheckedIn    = "ALREADY_CHECKED_IN"
	ErrCodeNoOpenSession       = "NO_OPEN_SESSION"
	ErrCodeMemberHasRecords    = "MEMBER_HAS_RECORDS"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

func NewAPIError(statusCode int, code string, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

// RespondWithError writes err and stops the handler chain.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}

// RespondValidationFailed answers 400 with the offending fields as details.
func RespondValidationFailed(c *gin.Context, details interface{}) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Input validation failed", details))
}

// RespondConflict answers 409 with a code the desk can tell apart from other conflicts.
func RespondConflict(c *gin.Context, code, message string, details interface{}) {
	RespondWithError(c, NewAPIError(http.StatusConflict, code, message, details))
}

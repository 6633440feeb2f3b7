package handlers

import (
	"net/http"

	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AttendanceRequest identifies the member at the desk.
type AttendanceRequest struct {
	MemberID int64 `json:"member_id" binding:"required,gt=0"`
}

// AttendanceHandler holds the attendance service.
type AttendanceHandler struct {
	attendanceService services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(as services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: as}
}

// CheckIn opens a session for the member.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CheckIn: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	session, err := h.attendanceService.CheckIn(c.Request.Context(), req.MemberID)
	if err != nil {
		utils.LogError(err, "CheckIn: Error from attendanceService.CheckIn")
		respondServiceError(c, err, "Failed to check in.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// CheckOut closes the member's open session from today.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CheckOut: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	session, err := h.attendanceService.CheckOut(c.Request.Context(), req.MemberID)
	if err != nil {
		utils.LogError(err, "CheckOut: Error from attendanceService.CheckOut")
		respondServiceError(c, err, "Failed to check out.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListAttendance returns the latest sessions, ?limit= defaults to 100.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	limit := utils.StrToPositiveInt(c.Query("limit"), services.DefaultListLimit)

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), limit)
	if err != nil {
		utils.LogError(err, "ListAttendance: Error from attendanceService.ListAttendance")
		respondServiceError(c, err, "Failed to fetch attendance.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records, "total": len(records)})
}

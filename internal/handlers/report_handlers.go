package handlers

import (
	"net/http"

	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard counters.
type ReportHandler struct {
	dashboardService services.DashboardService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ds services.DashboardService) *ReportHandler {
	return &ReportHandler{dashboardService: ds}
}

// GetDashboardStats returns total members, active-today and month-to-date revenue.
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetDashboardStats: Error from dashboardService.GetStats")
		respondServiceError(c, err, "Failed to compute dashboard stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

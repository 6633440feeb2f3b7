package router

import (
	"gym_frontdesk_backend/internal/handlers"
	"gym_frontdesk_backend/internal/middleware"
	"gym_frontdesk_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the login route, which is rate limited per client IP.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler, limiter *middleware.RateLimiter) {
	group.POST("/login", middleware.RateLimitMiddleware(limiter), authHandler.LoginUser)
}

// SetupAuthenticatedAuthRoutes sets up the routes for the signed-in account.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupStaffRoutes sets up the staff account routes.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	staffRoutes := authenticatedGroup.Group("/staff")
	staffRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		staffRoutes.POST("", authHandler.CreateStaff)
	}
}

// SetupMemberRoutes sets up the member routes.
func SetupMemberRoutes(authenticatedGroup *gin.RouterGroup, memberHandler *handlers.MemberHandler) {
	memberRoutes := authenticatedGroup.Group("/members")
	memberRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		memberRoutes.POST("", memberHandler.RegisterMember)
		memberRoutes.GET("", memberHandler.ListMembers)
		memberRoutes.GET("/:id", memberHandler.GetMember)
		memberRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), memberHandler.DeleteMember)
	}
}

// SetupAttendanceRoutes sets up the check-in and check-out routes.
func SetupAttendanceRoutes(authenticatedGroup *gin.RouterGroup, attendanceHandler *handlers.AttendanceHandler) {
	attendanceRoutes := authenticatedGroup.Group("/attendance")
	attendanceRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		attendanceRoutes.POST("/check-in", attendanceHandler.CheckIn)
		attendanceRoutes.POST("/check-out", attendanceHandler.CheckOut)
		attendanceRoutes.GET("", attendanceHandler.ListAttendance)
	}
}

// SetupTransactionRoutes sets up the payment routes.
func SetupTransactionRoutes(authenticatedGroup *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	transactionRoutes := authenticatedGroup.Group("/transactions")
	transactionRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		transactionRoutes.POST("", transactionHandler.RecordPayment)
		transactionRoutes.GET("", transactionHandler.ListTransactions)
	}
}

// SetupReceiptRoutes sets up the receipt routes.
func SetupReceiptRoutes(authenticatedGroup *gin.RouterGroup, receiptHandler *handlers.ReceiptHandler) {
	receiptRoutes := authenticatedGroup.Group("/receipts")
	receiptRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		receiptRoutes.POST("", receiptHandler.GenerateReceipt)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		dashboardRoutes.GET("/stats", reportHandler.GetDashboardStats)
	}
}

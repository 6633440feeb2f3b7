package router

import (
	"net/http"
	"time"

	"gym_frontdesk_backend/internal/config"
	"gym_frontdesk_backend/internal/handlers"
	"gym_frontdesk_backend/internal/middleware"
	"gym_frontdesk_backend/internal/repositories"
	"gym_frontdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the business services built for the HTTP layer.
type Services struct {
	Members      services.MemberService
	Attendance   services.AttendanceService
	Transactions services.TransactionService
	Receipts     services.ReceiptService
	Dashboard    services.DashboardService
	Auth         services.AuthService
}

// NewServices initializes repositories and services over one store handle.
func NewServices(db *sqlx.DB, cfg *config.Config, clock services.Clock) *Services {
	// Initialize Repositories
	memberRepo := repositories.NewMemberRepository()
	attendanceRepo := repositories.NewAttendanceRepository()
	transactionRepo := repositories.NewTransactionRepository()
	staffRepo := repositories.NewStaffRepository()

	// Initialize Services
	receiptService := services.NewReceiptService(db, memberRepo, clock, services.ReceiptConfig{
		Dir:        cfg.ReceiptDir,
		GymName:    cfg.GymName,
		GymAddress: cfg.GymAddress,
		GymPhone:   cfg.GymPhone,
	})

	return &Services{
		Members:      services.NewMemberService(db, memberRepo, attendanceRepo, transactionRepo, cfg.MemberDeletePolicy),
		Attendance:   services.NewAttendanceService(db, memberRepo, attendanceRepo, clock),
		Transactions: services.NewTransactionService(db, memberRepo, transactionRepo, receiptService, clock),
		Receipts:     receiptService,
		Dashboard:    services.NewDashboardService(db, memberRepo, attendanceRepo, transactionRepo, clock),
		Auth:         services.NewAuthService(db, staffRepo, clock, cfg.JWTSecret, cfg.JWTTTL),
	}
}

// Setup initializes the routing for the application and returns the services it wired.
func Setup(engine *gin.Engine, db *sqlx.DB, cfg *config.Config, clock services.Clock) *Services {
	svc := NewServices(db, cfg, clock)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(svc.Auth)
	memberHandler := handlers.NewMemberHandler(svc.Members)
	attendanceHandler := handlers.NewAttendanceHandler(svc.Attendance)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	receiptHandler := handlers.NewReceiptHandler(svc.Receipts)
	reportHandler := handlers.NewReportHandler(svc.Dashboard)

	engine.Use(middleware.MetricsMiddleware())

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := engine.Group("/api/v1")

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateRPS, cfg.LoginRateBurst, 10*time.Minute)
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler, loginLimiter)

	// Setup authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupStaffRoutes(authenticated, authHandler)
		SetupMemberRoutes(authenticated, memberHandler)
		SetupAttendanceRoutes(authenticated, attendanceHandler)
		SetupTransactionRoutes(authenticated, transactionHandler)
		SetupReceiptRoutes(authenticated, receiptHandler)
		SetupDashboardRoutes(authenticated, reportHandler)
	}

	return svc
}

package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAttendanceService struct {
	mock.Mock
}

func (m *mockAttendanceService) CheckIn(ctx context.Context, memberID int64) (*models.AttendanceSession, error) {
	args := m.Called(ctx, memberID)
	session, _ := args.Get(0).(*models.AttendanceSession)
	return session, args.Error(1)
}

func (m *mockAttendanceService) CheckOut(ctx context.Context, memberID int64) (*models.AttendanceSession, error) {
	args := m.Called(ctx, memberID)
	session, _ := args.Get(0).(*models.AttendanceSession)
	return session, args.Error(1)
}

func (m *mockAttendanceService) ListAttendance(ctx context.Context, limit int) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]models.AttendanceRecord)
	return records, args.Error(1)
}

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.DashboardStats)
	return stats, args.Error(1)
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckInStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"unknown member", services.ErrMemberNotFound, http.StatusNotFound},
		{"already checked in", services.ErrAlreadyCheckedIn, http.StatusConflict},
		{"storage failure", fmt.Errorf("%w: checking in: %w", services.ErrStorage, errors.New("disk full")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAttendanceService)
			var session *models.AttendanceSession
			if tt.err == nil {
				session = &models.AttendanceSession{ID: 1, MemberID: 5, CheckinTime: "2024-03-15 09:00:00"}
			}
			svc.On("CheckIn", mock.Anything, int64(5)).Return(session, tt.err)

			r := gin.New()
			r.POST("/check-in", NewAttendanceHandler(svc).CheckIn)

			w := serve(r, http.MethodPost, "/check-in", `{"member_id": 5}`)
			assert.Equal(t, tt.want, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCheckInRejectsBadBody(t *testing.T) {
	svc := new(mockAttendanceService)
	r := gin.New()
	r.POST("/check-in", NewAttendanceHandler(svc).CheckIn)

	for _, body := range []string{`{}`, `{"member_id": "x"}`, `{"member_id": -1}`, `not json`} {
		w := serve(r, http.MethodPost, "/check-in", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	svc.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything)
}

func TestCheckOutWithoutSession(t *testing.T) {
	svc := new(mockAttendanceService)
	svc.On("CheckOut", mock.Anything, int64(5)).Return(nil, services.ErrNoOpenSession)

	r := gin.New()
	r.POST("/check-out", NewAttendanceHandler(svc).CheckOut)

	w := serve(r, http.MethodPost, "/check-out", `{"member_id": 5}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), utils.ErrCodeNoOpenSession)
}

func TestListAttendanceLimit(t *testing.T) {
	svc := new(mockAttendanceService)
	svc.On("ListAttendance", mock.Anything, 100).Return([]models.AttendanceRecord{}, nil).Once()
	svc.On("ListAttendance", mock.Anything, 5).Return([]models.AttendanceRecord{}, nil).Once()

	r := gin.New()
	r.GET("/attendance", NewAttendanceHandler(svc).ListAttendance)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/attendance", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/attendance?limit=5", "").Code)
	svc.AssertExpectations(t)
}

func TestDashboardStatsStorageFailure(t *testing.T) {
	svc := new(mockDashboardService)
	svc.On("GetStats", mock.Anything).Return(nil, fmt.Errorf("%w: counting members: %w", services.ErrStorage, errors.New("locked")))

	r := gin.New()
	r.GET("/stats", NewReportHandler(svc).GetDashboardStats)

	w := serve(r, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "locked", "storage details stay in the logs")
}

func TestRespondServiceErrorValidation(t *testing.T) {
	r := gin.New()
	r.GET("/v", func(c *gin.Context) {
		respondServiceError(c, &services.ValidationError{Fields: []services.FieldError{{Field: "amount", Message: "amount must be a positive number"}}}, "x")
	})

	w := serve(r, http.MethodGet, "/v", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"amount"`)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

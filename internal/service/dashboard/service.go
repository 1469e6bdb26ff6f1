package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/utils"
)

type dashboardServiceImpl struct {
	dashboardRepo  dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	clock          utils.Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo dashboard.DashboardRepository, attendanceRepo attendance.AttendanceRepository, clock utils.Clock) dashboard.DashboardService {
	return &dashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
	}
}

// GetEmployeeDashboard reports today's status, Absent when no record exists
func (s *dashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, caller auth.Caller) (dashboard.EmployeeDashboardResponse, error) {
	_, today := s.clock.Today()

	att, err := s.attendanceRepo.GetByAccountAndDate(ctx, caller.AccountID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return dashboard.EmployeeDashboardResponse{TodayStatus: attendance.StatusAbsent}, nil
		}
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return dashboard.EmployeeDashboardResponse{TodayStatus: att.Status}, nil
}

// GetAdminDashboard counts non-staff accounts and how many are present today
func (s *dashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	_, today := s.clock.Today()

	stats, err := s.dashboardRepo.GetHeadcount(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to get headcount: %w", err)
	}

	return dashboard.AdminDashboardResponse{
		Employees:    stats.Employees,
		PresentToday: stats.Present,
		AbsentToday:  stats.Employees - stats.Present,
	}, nil
}

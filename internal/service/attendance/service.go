package attendance

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/metrics"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock utils.Clock
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, clock utils.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		clock:                clock,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, caller auth.Caller) (attendance.AttendanceResponse, error) {
	now, today := a.clock.Today()

	att, err := a.AttendanceRepository.Create(ctx, caller.AccountID, today, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check in: %w", err)
	}

	metrics.ObserveAttendance("check_in")
	return attendance.ToResponse(att, a.clock.Location), nil
}

// CheckOut implements attendance.AttendanceService.
// A second check-out on the same day overwrites the first.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, caller auth.Caller) (attendance.AttendanceResponse, error) {
	now, today := a.clock.Today()

	att, err := a.AttendanceRepository.CheckOut(ctx, caller.AccountID, today, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check out: %w", err)
	}

	metrics.ObserveAttendance("check_out")
	return attendance.ToResponse(att, a.clock.Location), nil
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, caller auth.Caller) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByAccount(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.ToResponses(records, a.clock.Location), nil
}

// ListAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all attendance: %w", err)
	}
	return attendance.ToResponses(records, a.clock.Location), nil
}

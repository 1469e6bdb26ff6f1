package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/metrics"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRequestRepository: leaveRequestRepository}
}

// Apply implements leave.LeaveService.
// Owner and status are never taken from the client.
func (s *LeaveServiceImpl) Apply(ctx context.Context, caller auth.Caller, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		AccountID: caller.AccountID,
		FromDate:  req.From,
		ToDate:    req.To,
		Reason:    req.Reason,
		Status:    leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "leave_request_id", created.ID, "account_id", caller.AccountID)
	return leave.ToResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, caller auth.Caller) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByAccount(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, caller auth.Caller, id int64) (leave.LeaveStatusResponse, error) {
	return s.decide(ctx, caller, id, leave.LeaveStatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, caller auth.Caller, id int64) (leave.LeaveStatusResponse, error) {
	return s.decide(ctx, caller, id, leave.LeaveStatusRejected)
}

// decide overwrites the status whatever it was before.
func (s *LeaveServiceImpl) decide(ctx context.Context, caller auth.Caller, id int64, status leave.LeaveStatus) (leave.LeaveStatusResponse, error) {
	previous, err := s.LeaveRequestRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		return leave.LeaveStatusResponse{}, fmt.Errorf("failed to set leave request %d to %s: %w", id, status, err)
	}

	if previous != leave.LeaveStatusPending {
		slog.Warn("Leave request decision overwritten",
			"leave_request_id", id,
			"previous_status", previous,
			"status", status,
			"decided_by", caller.Username,
		)
	}

	metrics.ObserveLeaveDecision(string(status))
	return leave.LeaveStatusResponse{Status: string(status)}, nil
}

package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	ListByAccount(ctx context.Context, accountID int64) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// UpdateStatus overwrites the status and returns the previous one.
	// A missing id returns ErrLeaveRequestNotFound.
	UpdateStatus(ctx context.Context, id int64, status LeaveStatus) (previous LeaveStatus, err error)
}

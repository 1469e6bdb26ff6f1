package leave

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
)

type LeaveService interface {
	Apply(ctx context.Context, caller auth.Caller, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	ListMine(ctx context.Context, caller auth.Caller) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)
	Approve(ctx context.Context, caller auth.Caller, id int64) (LeaveStatusResponse, error)
	Reject(ctx context.Context, caller auth.Caller, id int64) (LeaveStatusResponse, error)
}

package leave

import (
	"context"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (leave.LeaveService, leave.LeaveRequestRepository) {
	repo := inmemory.NewLeaveRequestRepository(inmemory.NewStore())
	return NewLeaveService(repo), repo
}

func TestLeaveService_Apply(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	caller := auth.Caller{AccountID: 7, Username: "DFANLE20240004"}

	resp, err := svc.Apply(ctx, caller, leave.ApplyLeaveRequest{FromDate: "2024-03-04", ToDate: "2024-03-05", Reason: "Family event"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-03-04", resp.FromDate)
	assert.Equal(t, "2024-03-05", resp.ToDate)

	stored, err := repo.ListByAccount(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ID, stored[0].ID)
	assert.Equal(t, leave.LeaveStatusPending, stored[0].Status)
}

func TestLeaveService_Apply_Invalid(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Apply(context.Background(), auth.Caller{AccountID: 7}, leave.ApplyLeaveRequest{FromDate: "2024-03-04"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "to_date")
	assert.Contains(t, errs.ToMap(), "reason")
}

func TestLeaveService_Decisions(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	admin := auth.Caller{AccountID: 1, Username: "admin", IsAdmin: true}

	created, err := svc.Apply(ctx, auth.Caller{AccountID: 7}, leave.ApplyLeaveRequest{FromDate: "2024-03-04", ToDate: "2024-03-04", Reason: "Doctor"})
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	// Decided requests are overwritten unconditionally.
	resp, err = svc.Reject(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)

	stored, err := repo.ListByAccount(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, leave.LeaveStatusRejected, stored[0].Status)

	_, err = svc.Approve(ctx, admin, 999)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	_, err = svc.Reject(ctx, admin, 999)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Lists(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, id := range []int64{7, 7, 8} {
		_, err := svc.Apply(ctx, auth.Caller{AccountID: id}, leave.ApplyLeaveRequest{FromDate: "2024-03-04", ToDate: "2024-03-04", Reason: "Errand"})
		require.NoError(t, err)
	}

	mine, err := svc.ListMine(ctx, auth.Caller{AccountID: 7})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, l := range mine {
		assert.Equal(t, int64(7), l.User)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

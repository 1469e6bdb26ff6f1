package postgresql_test

import (
	"context"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRequestRepository_CreateAndList(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(testDB)
	a := createTestAccount(t, ctx, "alice", false, day(2024, 1, 1))
	b := createTestAccount(t, ctx, "bob", false, day(2024, 1, 1))

	created, err := repo.Create(ctx, leave.LeaveRequest{
		AccountID: a.ID,
		FromDate:  day(2024, 3, 4),
		ToDate:    day(2024, 3, 5),
		Reason:    "Family event",
		Status:    leave.LeaveStatusPending,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, leave.LeaveStatusPending, created.Status)
	assert.Equal(t, day(2024, 3, 5), created.ToDate)

	_, err = repo.Create(ctx, leave.LeaveRequest{AccountID: b.ID, FromDate: day(2024, 4, 1), ToDate: day(2024, 4, 1), Reason: "Trip", Status: leave.LeaveStatusPending})
	require.NoError(t, err)

	mine, err := repo.ListByAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, l := range all {
		assert.NotNil(t, l.Username)
	}
}

func TestLeaveRequestRepository_UpdateStatus(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(testDB)
	a := createTestAccount(t, ctx, "alice", false, day(2024, 1, 1))

	created, err := repo.Create(ctx, leave.LeaveRequest{AccountID: a.ID, FromDate: day(2024, 3, 4), ToDate: day(2024, 3, 4), Reason: "Doctor", Status: leave.LeaveStatusPending})
	require.NoError(t, err)

	previous, err := repo.UpdateStatus(ctx, created.ID, leave.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusPending, previous)

	previous, err = repo.UpdateStatus(ctx, created.ID, leave.LeaveStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusApproved, previous, "decided requests can be overwritten")

	found, err := repo.ListByAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, leave.LeaveStatusRejected, found[0].Status)

	_, err = repo.UpdateStatus(ctx, created.ID+999, leave.LeaveStatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

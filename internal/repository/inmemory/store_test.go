package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_RollsBackOnError(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	attendances := NewAttendanceRepository(store)
	tx := NewTransactor(store)
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	kept, err := users.Create(ctx, user.User{Username: "kept", IsActive: true})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.WithinTx(ctx, func(txCtx context.Context) error {
		if _, err := users.Create(txCtx, user.User{Username: "discarded", IsActive: true}); err != nil {
			return err
		}
		if _, err := attendances.Create(txCtx, kept.ID, day, day.Add(9*time.Hour)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = users.GetByUsername(ctx, "discarded")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	_, err = attendances.GetByAccountAndDate(ctx, kept.ID, day)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	// Ids handed out inside the rolled back transaction are reused.
	next, err := users.Create(ctx, user.User{Username: "next", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, kept.ID+1, next.ID)
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	err := NewTransactor(store).WithinTx(ctx, func(txCtx context.Context) error {
		_, err := users.Create(txCtx, user.User{Username: "ann", IsActive: true})
		return err
	})
	require.NoError(t, err)

	_, err = users.GetByUsername(ctx, "ann")
	assert.NoError(t, err)
}

package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_CreateRejectsSecondRecord(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	acc := createTestAccount(t, ctx, "emp", false, day(2024, 1, 1))

	today := day(2024, 3, 1)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	att, err := repo.Create(ctx, acc.ID, today, now)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, att.Status)
	assert.Nil(t, att.CheckOut)

	_, err = repo.Create(ctx, acc.ID, today, now.Add(time.Minute))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_ConcurrentCheckInKeepsOneRecord(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	acc := createTestAccount(t, ctx, "emp", false, day(2024, 1, 1))

	today := day(2024, 3, 1)
	const workers = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, acc.ID, today, time.Now())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	records, err := repo.ListByAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceRepository_OpenAndCloseDay(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	acc := createTestAccount(t, ctx, "emp", false, day(2024, 1, 1))

	today := day(2024, 3, 1)
	firstLogin := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	opened, err := repo.OpenDay(ctx, acc.ID, today, firstLogin)
	require.NoError(t, err)
	require.NotNil(t, opened.CheckIn)
	assert.True(t, opened.CheckIn.Equal(firstLogin))
	assert.Nil(t, opened.CheckOut)

	closed, err := repo.CloseDay(ctx, acc.ID, today, firstLogin.Add(4*time.Hour))
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = repo.CloseDay(ctx, acc.ID, today, firstLogin.Add(5*time.Hour))
	require.NoError(t, err)
	assert.False(t, closed, "an already closed day is left alone")

	reopened, err := repo.OpenDay(ctx, acc.ID, today, firstLogin.Add(6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, opened.ID, reopened.ID)
	assert.Nil(t, reopened.CheckOut)
	assert.True(t, reopened.CheckIn.Equal(firstLogin), "re-opening keeps the original check-in")

	closed, err = repo.CloseDay(ctx, acc.ID, day(2024, 3, 2), firstLogin)
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestAttendanceRepository_CheckOut(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	acc := createTestAccount(t, ctx, "emp", false, day(2024, 1, 1))

	today := day(2024, 3, 1)
	in := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := repo.CheckOut(ctx, acc.ID, today, in)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	_, err = repo.Create(ctx, acc.ID, today, in)
	require.NoError(t, err)

	out, err := repo.CheckOut(ctx, acc.ID, today, in.Add(8*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, out.CheckOut)

	again, err := repo.CheckOut(ctx, acc.ID, today, in.Add(9*time.Hour))
	require.NoError(t, err)
	assert.True(t, again.CheckOut.Equal(in.Add(9*time.Hour)))
}

func TestAttendanceRepository_Lists(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	a := createTestAccount(t, ctx, "alice", false, day(2024, 1, 1))
	b := createTestAccount(t, ctx, "bob", false, day(2024, 1, 1))

	for _, d := range []time.Time{day(2024, 3, 1), day(2024, 3, 2)} {
		_, err := repo.Create(ctx, a.ID, d, d.Add(9*time.Hour))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, b.ID, day(2024, 3, 1), day(2024, 3, 1).Add(9*time.Hour))
	require.NoError(t, err)

	mine, err := repo.ListByAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, day(2024, 3, 2), mine[0].Date)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.NotNil(t, all[0].Username)
	assert.Equal(t, "alice", *all[0].Username)

	_, err = repo.GetByAccountAndDate(ctx, b.ID, day(2024, 3, 2))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

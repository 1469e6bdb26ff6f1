package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a Present record; a second record for the same day returns ErrAlreadyCheckedIn.
	Create(ctx context.Context, accountID int64, date time.Time, checkIn time.Time) (Attendance, error)

	// OpenDay creates the day's record at checkIn, or re-opens an existing one by clearing check_out.
	OpenDay(ctx context.Context, accountID int64, date time.Time, checkIn time.Time) (Attendance, error)

	// CloseDay stamps check_out only on an open record. It reports whether a record was closed.
	CloseDay(ctx context.Context, accountID int64, date time.Time, checkOut time.Time) (bool, error)

	// CheckOut stamps check_out on the day's record, returning ErrNotCheckedIn if there is none.
	CheckOut(ctx context.Context, accountID int64, date time.Time, checkOut time.Time) (Attendance, error)

	GetByAccountAndDate(ctx context.Context, accountID int64, date time.Time) (Attendance, error)
	ListByAccount(ctx context.Context, accountID int64) ([]Attendance, error)
	ListAll(ctx context.Context) ([]Attendance, error)
}

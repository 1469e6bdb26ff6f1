package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPresent = "Present"
	// StatusAbsent is derived for days without a record; it is never stored.
	StatusAbsent = "Absent"
)

type Attendance struct {
	ID        int64
	AccountID int64
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    string

	// Join
	Username *string
}

// HoursWorked returns the hours between check-in and check-out, rounded to two decimals.
func (a *Attendance) HoursWorked() *float64 {
	if a.CheckIn == nil || a.CheckOut == nil || a.CheckOut.Before(*a.CheckIn) {
		return nil
	}
	hours := decimal.NewFromFloat(a.CheckOut.Sub(*a.CheckIn).Hours()).Round(2).InexactFloat64()
	return &hours
}

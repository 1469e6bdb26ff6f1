package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID        int64
	AccountID int64
	FromDate  time.Time
	ToDate    time.Time
	Reason    string
	Status    LeaveStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	Username *string
}

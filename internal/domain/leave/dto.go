package leave

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

// ApplyLeaveRequest carries only client-settable fields; owner and status are assigned by the service.
type ApplyLeaveRequest struct {
	FromDate string `json:"from_date" validate:"required,date"`
	ToDate   string `json:"to_date" validate:"required,date"`
	Reason   string `json:"reason" validate:"required,max=2000"`

	// Parsed
	From time.Time `json:"-"`
	To   time.Time `json:"-"`
}

func (r *ApplyLeaveRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.Reason) && !hasField(errs, "reason") {
		errs.Add("reason", "reason is required")
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	to, toOK := validator.IsValidDate(r.ToDate)
	if fromOK && toOK {
		if to.Before(from) {
			errs.Add("to_date", "to_date must be on or after from_date")
		}
		r.From, r.To = from, to
	}

	return errs.Err()
}

func hasField(errs validator.ValidationErrors, field string) bool {
	_, ok := errs.ToMap()[field]
	return ok
}

type LeaveRequestResponse struct {
	ID        int64   `json:"id"`
	User      int64   `json:"user"`
	Username  *string `json:"username,omitempty"`
	FromDate  string  `json:"from_date"`
	ToDate    string  `json:"to_date"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:        l.ID,
		User:      l.AccountID,
		Username:  l.Username,
		FromDate:  l.FromDate.Format(validator.DateLayout),
		ToDate:    l.ToDate.Format(validator.DateLayout),
		Reason:    l.Reason,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, l := range requests {
		responses = append(responses, ToResponse(l))
	}
	return responses
}

type LeaveStatusResponse struct {
	Status string `json:"status"`
}

package attendance

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID          int64    `json:"id"`
	User        int64    `json:"user"`
	Username    *string  `json:"username,omitempty"`
	Date        string   `json:"date"`
	CheckIn     *string  `json:"check_in"`
	CheckOut    *string  `json:"check_out"`
	Status      string   `json:"status"`
	HoursWorked *float64 `json:"hours_worked,omitempty"`
}

// ToResponse renders the record with times in loc.
func ToResponse(a Attendance, loc *time.Location) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		User:        a.AccountID,
		Username:    a.Username,
		Date:        a.Date.Format(validator.DateLayout),
		CheckIn:     formatTime(a.CheckIn, loc),
		CheckOut:    formatTime(a.CheckOut, loc),
		Status:      a.Status,
		HoursWorked: a.HoursWorked(),
	}
}

func ToResponses(records []Attendance, loc *time.Location) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, ToResponse(a, loc))
	}
	return responses
}

func formatTime(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format(time.RFC3339)
	return &formatted
}

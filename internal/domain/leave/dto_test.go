package leave

import (
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLeaveRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        ApplyLeaveRequest
		wantFields []string
	}{
		{
			name: "valid single day",
			req:  ApplyLeaveRequest{FromDate: "2024-03-04", ToDate: "2024-03-04", Reason: "Doctor"},
		},
		{
			name:       "missing everything",
			req:        ApplyLeaveRequest{},
			wantFields: []string{"from_date", "to_date", "reason"},
		},
		{
			name:       "malformed date",
			req:        ApplyLeaveRequest{FromDate: "04/03/2024", ToDate: "2024-03-05", Reason: "Trip"},
			wantFields: []string{"from_date"},
		},
		{
			name:       "reversed range",
			req:        ApplyLeaveRequest{FromDate: "2024-03-05", ToDate: "2024-03-04", Reason: "Trip"},
			wantFields: []string{"to_date"},
		},
		{
			name:       "blank reason",
			req:        ApplyLeaveRequest{FromDate: "2024-03-04", ToDate: "2024-03-05", Reason: "   "},
			wantFields: []string{"reason"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			fields := errs.ToMap()
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestApplyLeaveRequest_ParsesDates(t *testing.T) {
	req := ApplyLeaveRequest{FromDate: "2024-03-04", ToDate: "2024-03-06", Reason: "Family"}
	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), req.From)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), req.To)
}

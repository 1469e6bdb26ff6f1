package employee

import (
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateEmployeeRequest{FirstName: " Ann ", LastName: "Lee", Email: "a@x.com", JoiningDate: "2024-03-01"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "Ann", req.FirstName)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), req.JoinedOn)
	})

	t.Run("invalid", func(t *testing.T) {
		req := CreateEmployeeRequest{FirstName: "", LastName: "Lee", Email: "not-an-email", JoiningDate: "2024-13-01"}
		var errs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &errs)

		fields := errs.ToMap()
		assert.Equal(t, "first_name is required", fields["first_name"])
		assert.Equal(t, "email must be a valid email address", fields["email"])
		assert.Contains(t, fields, "joining_date")
		assert.NotContains(t, fields, "last_name")
	})
}

func TestProjections(t *testing.T) {
	u := user.User{ID: 7, Username: "DFANLE20240004", FirstName: "Ann", LastName: "Lee", Email: "a@x.com", IsActive: true}

	item := ToListItem(u)
	assert.Equal(t, EmployeeListItem{ID: 7, Username: "DFANLE20240004", Name: "Ann Lee", Email: "a@x.com", IsActive: true}, item)

	detail := ToDetail(u)
	assert.Equal(t, EmployeeDetailResponse{ID: 7, Username: "DFANLE20240004", Email: "a@x.com", IsActive: true}, detail)
}

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	adminOnly := []Permission{
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionDashboardAdmin,
	}
	for _, p := range adminOnly {
		assert.True(t, HasPermission(RoleAdmin, p), "admin should have %s", p)
		assert.False(t, HasPermission(RoleEmployee, p), "employee should not have %s", p)
	}

	for _, p := range employeePermissions {
		assert.True(t, HasPermission(RoleAdmin, p), "admin should have %s", p)
		assert.True(t, HasPermission(RoleEmployee, p), "employee should have %s", p)
	}

	assert.False(t, HasPermission(Role("GUEST"), PermissionViewOwnProfile))
}

func TestUserRoleAndName(t *testing.T) {
	u := User{FirstName: "Ann", LastName: "Lee", IsStaff: false}
	assert.Equal(t, RoleEmployee, u.Role())
	assert.Equal(t, "Ann Lee", u.FullName())

	u.IsStaff = true
	u.LastName = ""
	assert.Equal(t, RoleAdmin, u.Role())
	assert.Equal(t, "Ann", u.FullName())
}

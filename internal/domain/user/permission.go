package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile    Permission = "profile.view_own"
	PermissionChangeOwnPassword Permission = "profile.change_password"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Dashboards
	PermissionDashboardAdmin Permission = "dashboard.admin"
)

var employeePermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionChangeOwnPassword,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionAttendanceViewOwn,
	PermissionAttendanceCreate,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append(append([]Permission{}, employeePermissions...),
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionDashboardAdmin,
	),
	RoleEmployee: employeePermissions,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

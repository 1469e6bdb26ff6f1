package employee

type EmployeeProfile struct {
	AccountID    int64
	IsFirstLogin bool
}

package dashboard

// EmployeeDashboardResponse reports the caller's attendance label for today
type EmployeeDashboardResponse struct {
	TodayStatus string `json:"today_status"`
}

// AdminDashboardResponse reports today's headcount among non-staff accounts
type AdminDashboardResponse struct {
	Employees    int64 `json:"employees"`
	PresentToday int64 `json:"present_today"`
	AbsentToday  int64 `json:"absent_today"`
}

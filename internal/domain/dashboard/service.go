package dashboard

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
)

type DashboardService interface {
	GetEmployeeDashboard(ctx context.Context, caller auth.Caller) (EmployeeDashboardResponse, error)
	GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
}

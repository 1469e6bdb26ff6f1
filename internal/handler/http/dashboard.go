package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetEmployeeDashboard handles GET /api/dashboard/employee
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), caller)
	if err != nil {
		slog.Error("GetEmployeeDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdminDashboard handles GET /api/dashboard/admin
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		slog.Error("GetAdminDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

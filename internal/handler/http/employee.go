package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("CreateEmployee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Employee not found")
	if !ok {
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		slog.Error("GetEmployee service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ToggleStatus implements EmployeeHandler.
func (h *employeeHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "Employee not found")
	if !ok {
		return
	}

	result, err := h.employeeService.ToggleStatus(r.Context(), caller, id)
	if err != nil {
		slog.Error("ToggleStatus service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// GetProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.GetProfile(r.Context(), caller)
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

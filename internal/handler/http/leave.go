package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (l *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Apply leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.Apply(r.Context(), caller, req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// ListMine implements LeaveHandler.
func (l *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := l.leaveService.ListMine(r.Context(), caller)
	if err != nil {
		slog.Error("ListMine leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements LeaveHandler.
func (l *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAll leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LeaveHandler.
func (l *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.leaveService.Approve)
}

// Reject implements LeaveHandler.
func (l *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.leaveService.Reject)
}

func (l *leaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, caller auth.Caller, id int64) (leave.LeaveStatusResponse, error)) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	requestID, ok := idParam(w, r, "Leave request not found")
	if !ok {
		return
	}

	result, err := decide(r.Context(), caller, requestID)
	if err != nil {
		slog.Error("Leave decision service error", "error", err, "leave_request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", result)
}

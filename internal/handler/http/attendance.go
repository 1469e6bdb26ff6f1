package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), caller)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "account_id", caller.AccountID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), caller)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "account_id", caller.AccountID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", result)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ListMine(r.Context(), caller)
	if err != nil {
		slog.Error("ListMine attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAll attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

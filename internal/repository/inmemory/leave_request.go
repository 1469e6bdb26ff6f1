package inmemory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	s *Store
}

func NewLeaveRequestRepository(s *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{s: s}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextLeaveID++
	request.ID = r.s.nextLeaveID
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.s.leaves[request.ID] = request
	return request, nil
}

func (r *leaveRequestRepository) ListByAccount(ctx context.Context, accountID int64) ([]leave.LeaveRequest, error) {
	return r.list(func(l leave.LeaveRequest) bool { return l.AccountID == accountID }), nil
}

func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(func(leave.LeaveRequest) bool { return true }), nil
}

func (r *leaveRequestRepository) list(match func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	requests := []leave.LeaveRequest{}
	for _, l := range r.s.leaves {
		if !match(l) {
			continue
		}
		if acc, ok := r.s.accounts[l.AccountID]; ok {
			username := acc.Username
			l.Username = &username
		}
		requests = append(requests, l)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID > requests[j].ID })
	return requests
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status leave.LeaveStatus) (leave.LeaveStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.leaves[id]
	if !ok {
		return "", leave.ErrLeaveRequestNotFound
	}
	previous := l.Status
	l.Status = status
	l.UpdatedAt = time.Now()
	r.s.leaves[id] = l
	return previous, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `id, account_id, from_date, to_date, reason, status, created_at, updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(&l.ID, &l.AccountID, &l.FromDate, &l.ToDate, &l.Reason, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (account_id, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.AccountID, request.FromDate, request.ToDate, request.Reason, string(request.Status),
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// ListByAccount implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByAccount(ctx context.Context, accountID int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.account_id, lr.from_date, lr.to_date, lr.reason, lr.status, lr.created_at, lr.updated_at, a.username
		FROM leave_requests lr
		JOIN accounts a ON a.id = lr.account_id
		ORDER BY lr.created_at DESC, lr.id DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(&l.ID, &l.AccountID, &l.FromDate, &l.ToDate, &l.Reason, &l.Status, &l.CreatedAt, &l.UpdatedAt, &l.Username); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.LeaveStatus) (leave.LeaveStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH prev AS (
			SELECT id, status FROM leave_requests WHERE id = $1 FOR UPDATE
		)
		UPDATE leave_requests lr
		SET status = $2, updated_at = NOW()
		FROM prev
		WHERE lr.id = prev.id
		RETURNING prev.status
	`

	var previous leave.LeaveStatus
	if err := q.QueryRow(ctx, query, id, string(status)).Scan(&previous); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", leave.ErrLeaveRequestNotFound
		}
		return "", fmt.Errorf("failed to update leave request status: %w", err)
	}
	return previous, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	attendanceColumns          = `id, account_id, date, check_in, check_out, status`
	attendanceUniqueConstraint = "uq_attendances_account_date"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(&att.ID, &att.AccountID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, accountID int64, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (account_id, date, check_in, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, accountID, date, checkIn, attendance.StatusPresent))
	if err != nil {
		if isUniqueViolation(err, attendanceUniqueConstraint) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return att, nil
}

// OpenDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) OpenDay(ctx context.Context, accountID int64, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (account_id, date, check_in, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT ` + attendanceUniqueConstraint + `
		DO UPDATE SET check_out = NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, accountID, date, checkIn, attendance.StatusPresent))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to open attendance day: %w", err)
	}
	return att, nil
}

// CloseDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseDay(ctx context.Context, accountID int64, date time.Time, checkOut time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $3
		WHERE account_id = $1 AND date = $2 AND check_out IS NULL
	`
	tag, err := q.Exec(ctx, query, accountID, date, checkOut)
	if err != nil {
		return false, fmt.Errorf("failed to close attendance day: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CheckOut(ctx context.Context, accountID int64, date time.Time, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $3
		WHERE account_id = $1 AND date = $2
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, accountID, date, checkOut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check out: %w", err)
	}
	return att, nil
}

// GetByAccountAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByAccountAndDate(ctx context.Context, accountID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE account_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, accountID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by account and date: %w", err)
	}
	return att, nil
}

// ListByAccount implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByAccount(ctx context.Context, accountID int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE account_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// ListAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT att.id, att.account_id, att.date, att.check_in, att.check_out, att.status, acc.username
		FROM attendances att
		JOIN accounts acc ON acc.id = att.account_id
		ORDER BY att.date DESC, att.id DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.AccountID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status, &att.Username); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

package inmemory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	s *Store
}

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepository{s: s}
}

func keyOf(accountID int64, date time.Time) attendanceKey {
	return attendanceKey{accountID: accountID, date: date.Format("2006-01-02")}
}

func (r *attendanceRepository) insert(accountID int64, date time.Time, checkIn time.Time) attendance.Attendance {
	r.s.nextAttendanceID++
	in := checkIn
	att := attendance.Attendance{
		ID:        r.s.nextAttendanceID,
		AccountID: accountID,
		Date:      date,
		CheckIn:   &in,
		Status:    attendance.StatusPresent,
	}
	r.s.attendances[keyOf(accountID, date)] = att
	return att
}

func (r *attendanceRepository) Create(ctx context.Context, accountID int64, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.attendances[keyOf(accountID, date)]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	return r.insert(accountID, date, checkIn), nil
}

func (r *attendanceRepository) OpenDay(ctx context.Context, accountID int64, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := keyOf(accountID, date)
	if att, ok := r.s.attendances[key]; ok {
		att.CheckOut = nil
		r.s.attendances[key] = att
		return att, nil
	}
	return r.insert(accountID, date, checkIn), nil
}

func (r *attendanceRepository) CloseDay(ctx context.Context, accountID int64, date time.Time, checkOut time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := keyOf(accountID, date)
	att, ok := r.s.attendances[key]
	if !ok || att.CheckOut != nil {
		return false, nil
	}
	out := checkOut
	att.CheckOut = &out
	r.s.attendances[key] = att
	return true, nil
}

func (r *attendanceRepository) CheckOut(ctx context.Context, accountID int64, date time.Time, checkOut time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := keyOf(accountID, date)
	att, ok := r.s.attendances[key]
	if !ok {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	out := checkOut
	att.CheckOut = &out
	r.s.attendances[key] = att
	return att, nil
}

func (r *attendanceRepository) GetByAccountAndDate(ctx context.Context, accountID int64, date time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	att, ok := r.s.attendances[keyOf(accountID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *attendanceRepository) ListByAccount(ctx context.Context, accountID int64) ([]attendance.Attendance, error) {
	return r.list(func(a attendance.Attendance) bool { return a.AccountID == accountID }), nil
}

func (r *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return r.list(func(attendance.Attendance) bool { return true }), nil
}

func (r *attendanceRepository) list(match func(attendance.Attendance) bool) []attendance.Attendance {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records := []attendance.Attendance{}
	for _, att := range r.s.attendances {
		if !match(att) {
			continue
		}
		if acc, ok := r.s.accounts[att.AccountID]; ok {
			username := acc.Username
			att.Username = &username
		}
		records = append(records, att)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID > records[j].ID
	})
	return records
}

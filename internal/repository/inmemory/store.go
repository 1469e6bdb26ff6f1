// Package inmemory implements the repository interfaces over process memory.
// Services and handlers are tested against it; it keeps the same uniqueness
// guarantees the PostgreSQL schema enforces.
package inmemory

import (
	"context"
	"maps"
	"sync"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type attendanceKey struct {
	accountID int64
	date      string
}

// Store is shared by every repository built from it.
type Store struct {
	mu sync.Mutex

	accounts    map[int64]user.User
	profiles    map[int64]employee.EmployeeProfile
	sessions    map[string]auth.Session
	attendances map[attendanceKey]attendance.Attendance
	leaves      map[int64]leave.LeaveRequest
	sequences   map[int]int

	nextAccountID    int64
	nextAttendanceID int64
	nextLeaveID      int64
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[int64]user.User),
		profiles:    make(map[int64]employee.EmployeeProfile),
		sessions:    make(map[string]auth.Session),
		attendances: make(map[attendanceKey]attendance.Attendance),
		leaves:      make(map[int64]leave.LeaveRequest),
		sequences:   make(map[int]int),
	}
}

type snapshot struct {
	accounts    map[int64]user.User
	profiles    map[int64]employee.EmployeeProfile
	sessions    map[string]auth.Session
	attendances map[attendanceKey]attendance.Attendance
	leaves      map[int64]leave.LeaveRequest
	sequences   map[int]int

	nextAccountID    int64
	nextAttendanceID int64
	nextLeaveID      int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot{
		accounts:         maps.Clone(s.accounts),
		profiles:         maps.Clone(s.profiles),
		sessions:         maps.Clone(s.sessions),
		attendances:      maps.Clone(s.attendances),
		leaves:           maps.Clone(s.leaves),
		sequences:        maps.Clone(s.sequences),
		nextAccountID:    s.nextAccountID,
		nextAttendanceID: s.nextAttendanceID,
		nextLeaveID:      s.nextLeaveID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = snap.accounts
	s.profiles = snap.profiles
	s.sessions = snap.sessions
	s.attendances = snap.attendances
	s.leaves = snap.leaves
	s.sequences = snap.sequences
	s.nextAccountID = snap.nextAccountID
	s.nextAttendanceID = snap.nextAttendanceID
	s.nextLeaveID = snap.nextLeaveID
}

type transactor struct {
	s *Store
}

// NewTransactor returns a Transactor over s. When fn fails the store is put back
// to the state it had before fn ran. Writes made concurrently by callers outside
// the transaction are lost on rollback.
func NewTransactor(s *Store) database.Transactor {
	return transactor{s: s}
}

func (t transactor) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	snap := t.s.snapshot()
	if err := fn(ctx); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

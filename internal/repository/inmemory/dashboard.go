package inmemory

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
)

type dashboardRepository struct {
	s *Store
}

func NewDashboardRepository(s *Store) dashboard.DashboardRepository {
	return &dashboardRepository{s: s}
}

func (r *dashboardRepository) GetHeadcount(ctx context.Context, date time.Time) (dashboard.HeadcountStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var stats dashboard.HeadcountStats
	for _, acc := range r.s.accounts {
		if acc.IsStaff {
			continue
		}
		stats.Employees++
		if att, ok := r.s.attendances[keyOf(acc.ID, date)]; ok && att.Status == attendance.StatusPresent {
			stats.Present++
		}
	}
	return stats, nil
}

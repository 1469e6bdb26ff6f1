package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetHeadcount returns non-staff total and present count for date in single query
func (r *dashboardRepositoryImpl) GetHeadcount(ctx context.Context, date time.Time) (dashboard.HeadcountStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS employees,
			COUNT(att.id) AS present
		FROM accounts a
		LEFT JOIN attendances att
			ON att.account_id = a.id AND att.date = $1 AND att.status = $2
		WHERE a.is_staff = FALSE
	`

	var stats dashboard.HeadcountStats
	if err := q.QueryRow(ctx, query, date, attendance.StatusPresent).Scan(&stats.Employees, &stats.Present); err != nil {
		return dashboard.HeadcountStats{}, fmt.Errorf("failed to get headcount: %w", err)
	}
	return stats, nil
}

package dashboard

import (
	"context"
	"time"
)

// HeadcountStats combines the admin dashboard counts in single query
type HeadcountStats struct {
	Employees int64 // non-staff accounts
	Present   int64 // non-staff accounts with a Present record on the date
}

type DashboardRepository interface {
	GetHeadcount(ctx context.Context, date time.Time) (HeadcountStats, error)
}

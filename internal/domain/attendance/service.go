package attendance

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, caller auth.Caller) (AttendanceResponse, error)
	CheckOut(ctx context.Context, caller auth.Caller) (AttendanceResponse, error)
	ListMine(ctx context.Context, caller auth.Caller) ([]AttendanceResponse, error)
	ListAll(ctx context.Context) ([]AttendanceResponse, error)
}

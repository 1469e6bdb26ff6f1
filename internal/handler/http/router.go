package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Employee   EmployeeHandler
	Dashboard  DashboardHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, authService auth.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(metrics.Middleware)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), JWTService.TokenFromCookie, jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(authService))

			r.Post("/logout", h.Auth.Logout)
			r.With(middleware.RequirePermission(user.PermissionChangeOwnPassword)).Post("/change-password", h.Auth.ChangePassword)
			r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/profile", h.Employee.GetProfile)

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/checkin", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/checkout", h.Attendance.CheckOut)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/my", h.Attendance.ListMine)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/all", h.Attendance.ListAll)
			})

			r.Route("/leave", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/apply", h.Leave.Apply)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/my", h.Leave.ListMine)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/all", h.Leave.ListAll)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Put("/{id}/approve", h.Leave.Approve)
					r.Put("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/employee", h.Dashboard.GetEmployeeDashboard)
				r.With(middleware.RequirePermission(user.PermissionDashboardAdmin)).Get("/admin", h.Dashboard.GetAdminDashboard)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Put("/{id}/status", h.Employee.ToggleStatus)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/employees/create", h.Employee.CreateEmployee)
			})
		})
	})
	return r
}

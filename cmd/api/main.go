package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	appHTTP "github.com/dayflow-hr/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/utils"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hr/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	dsn := cfg.DatabaseURL()
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(dsn); err != nil {
			slog.Error("Error running migrations", "error", err)
			os.Exit(1)
		}
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	clock := utils.NewClock(cfg.Location())
	tx := postgresql.NewTransactor(db)

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiration, cfg.Session.CookieSecure)

	authService := serviceAuth.NewAuthService(tx, userRepo, profileRepo, attendanceRepo, sessionRepo, JWTService, clock)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clock)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	employeeSvc := employeeService.NewEmployeeService(tx, userRepo, profileRepo, cfg.Company.Code, clock)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, clock)

	if cfg.Admin.Enabled() {
		if err := employeeSvc.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
			slog.Error("Error bootstrapping admin account", "error", err)
			os.Exit(1)
		}
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(JWTService, authService),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

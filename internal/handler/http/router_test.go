package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/utils"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/inmemory"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hr/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	handler http.Handler
	users   user.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := inmemory.NewStore()
	tx := inmemory.NewTransactor(store)
	clock := utils.NewClock(time.UTC)

	users := inmemory.NewUserRepository(store)
	profiles := inmemory.NewProfileRepository(store)
	sessions := inmemory.NewSessionRepository(store)
	attendances := inmemory.NewAttendanceRepository(store)
	leaves := inmemory.NewLeaveRequestRepository(store)
	dashboards := inmemory.NewDashboardRepository(store)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h", false)
	authSvc := authService.NewAuthService(tx, users, profiles, attendances, sessions, jwtSvc, clock)

	router := NewRouter(
		RouterOptions{
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			LogLevel:       slog.LevelError,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		jwtSvc,
		authSvc,
		Handlers{
			Auth:       NewAuthHandler(jwtSvc, authSvc),
			Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(attendances, clock)),
			Leave:      NewLeaveHandler(leaveService.NewLeaveService(leaves)),
			Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(tx, users, profiles, "DF", clock)),
			Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(dashboards, attendances, clock)),
		},
	)

	return &testServer{handler: router, users: users}
}

func (s *testServer) createAccount(t *testing.T, username, password string, isStaff bool) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	created, err := s.users.Create(context.Background(), user.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    "Ann",
		LastName:     "Lee",
		Email:        username + "@example.com",
		IsActive:     true,
		IsStaff:      isStaff,
		JoinedOn:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return created
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == jwt.SessionCookieName {
			return c
		}
	}
	return nil
}

func (s *testServer) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, "/api/login", map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, env.Success)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	return cookie
}

func TestRouter_Heartbeat(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_SetsHttpOnlyCookie(t *testing.T) {
	s := newTestServer(t)
	account := s.createAccount(t, "DFANLE20240001", "password123", false)

	rec, env := s.do(t, http.MethodPost, "/api/login",
		map[string]string{"login_id": "DFANLE20240001", "password": "password123"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, float64(account.ID), data["id"])
	assert.Equal(t, "DFANLE20240001", data["login_id"])
	assert.Equal(t, "Ann Lee", data["name"])
	assert.Equal(t, "EMPLOYEE", data["role"])
	assert.Equal(t, false, data["first_login"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "ann", "password123", false)

	rec, env := s.do(t, http.MethodPost, "/api/login",
		map[string]string{"username": "ann", "password": "wrong-password"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Nil(t, sessionCookie(rec))

	rec, _ = s.do(t, http.MethodPost, "/api/login", map[string]string{"password": "password123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/login", map[string]string{"username": "ann"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	s := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/logout"},
		{http.MethodPost, "/api/attendance/checkin"},
		{http.MethodGet, "/api/attendance/my"},
		{http.MethodGet, "/api/leave/my"},
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/dashboard/employee"},
		{http.MethodGet, "/api/employees"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec, _ := s.do(t, p.method, p.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestProtectedRoutes_RejectTamperedCookie(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/api/profile", nil,
		&http.Cookie{Name: jwt.SessionCookieName, Value: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_ForbiddenForEmployee(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "ann", "password123", false)
	cookie := s.login(t, "ann", "password123")

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/attendance/all"},
		{http.MethodGet, "/api/leave/all"},
		{http.MethodPut, "/api/leave/1/approve"},
		{http.MethodPut, "/api/leave/1/reject"},
		{http.MethodPost, "/api/admin/employees/create"},
		{http.MethodGet, "/api/dashboard/admin"},
		{http.MethodGet, "/api/employees"},
		{http.MethodGet, "/api/employees/1"},
		{http.MethodPut, "/api/employees/1/status"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec, env := s.do(t, p.method, p.path, nil, cookie)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestAttendance_CheckInTwiceIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "admin", "password123", true)
	cookie := s.login(t, "admin", "password123")

	// Login already opened today's record.
	rec, env := s.do(t, http.MethodPost, "/api/attendance/checkin", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Already checked in", env.Error.Message)

	rec, env = s.do(t, http.MethodPost, "/api/attendance/checkout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "Present", record["status"])
	assert.NotNil(t, record["check_out"])

	rec, env = s.do(t, http.MethodGet, "/api/attendance/my", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	assert.Len(t, records, 1)
}

func TestLeave_ApplyValidationAndDecision(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "ann", "password123", false)
	s.createAccount(t, "admin", "password123", true)
	employeeCookie := s.login(t, "ann", "password123")
	adminCookie := s.login(t, "admin", "password123")

	rec, env := s.do(t, http.MethodPost, "/api/leave/apply", map[string]string{
		"from_date": "2024-05-10",
		"to_date":   "2024-05-01",
		"reason":    "Trip",
	}, employeeCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "to_date")

	rec, env = s.do(t, http.MethodPost, "/api/leave/apply", map[string]string{
		"from_date": "2024-05-01",
		"to_date":   "2024-05-03",
		"reason":    "Trip",
	}, employeeCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created["status"])
	id := int64(created["id"].(float64))

	rec, env = s.do(t, http.MethodPut, fmt.Sprintf("/api/leave/%d/approve", id), nil, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "approved", status["status"])

	rec, _ = s.do(t, http.MethodPut, "/api/leave/9999/reject", nil, adminCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, http.MethodPut, "/api/leave/abc/reject", nil, adminCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployees_ProvisionAndManage(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "admin", "password123", true)
	adminCookie := s.login(t, "admin", "password123")

	rec, env := s.do(t, http.MethodPost, "/api/admin/employees/create", map[string]string{
		"first_name":   "Ann",
		"last_name":    "Lee",
		"email":        "not-an-email",
		"joining_date": "2025-02-01",
	}, adminCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "email")

	rec, env = s.do(t, http.MethodPost, "/api/admin/employees/create", map[string]string{
		"first_name":   "Ann",
		"last_name":    "Lee",
		"email":        "ann@example.com",
		"joining_date": "2025-02-01",
	}, adminCookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var provisioned map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &provisioned))
	assert.Equal(t, "DFANLE20250001", provisioned["login_id"])
	assert.Regexp(t, `^Temp@[A-HJ-NP-Z2-9]{4}$`, provisioned["temporary_password"])

	// The new employee must change the temporary password.
	rec, env = s.do(t, http.MethodPost, "/api/login", map[string]string{
		"login_id": provisioned["login_id"],
		"password": provisioned["temporary_password"],
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var loginData map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	assert.Equal(t, true, loginData["first_login"])
	employeeID := int64(loginData["id"].(float64))

	rec, env = s.do(t, http.MethodGet, "/api/employees", nil, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "DFANLE20250001", list[0]["username"])

	rec, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", employeeID), nil, adminCookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/employees/9999", nil, adminCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = s.do(t, http.MethodPut, fmt.Sprintf("/api/employees/%d/status", employeeID), nil, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.Equal(t, false, toggled["is_active"])

	rec, env = s.do(t, http.MethodGet, "/api/dashboard/admin", nil, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash map[string]int64
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, int64(1), dash["employees"])
	assert.Equal(t, int64(1), dash["present_today"])
	assert.Equal(t, int64(0), dash["absent_today"])
}

func TestLogout_ClearsCookieAndRevokesSession(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "ann", "password123", false)
	cookie := s.login(t, "ann", "password123")

	rec, env := s.do(t, http.MethodGet, "/api/dashboard/employee", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, "Present", dash["today_status"])

	rec, _ = s.do(t, http.MethodPost, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)

	rec, _ = s.do(t, http.MethodGet, "/api/profile", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t)
	s.createAccount(t, "ann", "password123", false)
	cookie := s.login(t, "ann", "password123")

	rec, env := s.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"old_password":     "password123",
		"new_password":     "new-password-1",
		"confirm_password": "different-pass",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)

	rec, env = s.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"old_password":     "wrong-password",
		"new_password":     "short",
		"confirm_password": "mismatch",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Old password incorrect", env.Error.Message)

	rec, _ = s.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"old_password":     "password123",
		"new_password":     "new-password-1",
		"confirm_password": "new-password-1",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/profile", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	fresh := s.login(t, "ann", "new-password-1")
	rec, env = s.do(t, http.MethodGet, "/api/profile", nil, fresh)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "ann", profile["username"])
	assert.Equal(t, false, profile["first_login"])
}

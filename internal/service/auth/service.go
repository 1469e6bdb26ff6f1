package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/metrics"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx          database.Transactor
	users       user.UserRepository
	profiles    employee.ProfileRepository
	attendances attendance.AttendanceRepository
	sessions    auth.SessionRepository
	jwtService  jwt.Service
	clock       utils.Clock
}

func NewAuthService(
	tx database.Transactor,
	userRepository user.UserRepository,
	profileRepository employee.ProfileRepository,
	attendanceRepository attendance.AttendanceRepository,
	sessionRepository auth.SessionRepository,
	jwtService jwt.Service,
	clock utils.Clock,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:          tx,
		users:       userRepository,
		profiles:    profileRepository,
		attendances: attendanceRepository,
		sessions:    sessionRepository,
		jwtService:  jwtService,
		clock:       clock,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.LoginResult, error) {
	userData, err := a.users.GetByUsername(ctx, loginReq.Identifier())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			metrics.ObserveLogin("invalid_credentials")
			return auth.LoginResult{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResult{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		metrics.ObserveLogin("invalid_credentials")
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		metrics.ObserveLogin("inactive")
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	now, today := a.clock.Today()
	sessionID := uuid.NewString()

	token, expiresAt, err := a.jwtService.GenerateSessionToken(jwt.SessionClaims{
		SessionID: sessionID,
		AccountID: userData.ID,
		Username:  userData.Username,
		IsAdmin:   userData.IsStaff,
	})
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to create session token: %w", err)
	}

	var profile employee.EmployeeProfile
	err = a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		// Login never marks a profile as first-login; only provisioning does.
		profile, err = a.profiles.GetOrCreate(txCtx, userData.ID, false)
		if err != nil {
			return fmt.Errorf("failed to ensure employee profile: %w", err)
		}

		if _, err := a.attendances.OpenDay(txCtx, userData.ID, today, now); err != nil {
			return fmt.Errorf("failed to open attendance day: %w", err)
		}

		err = a.sessions.Create(txCtx, auth.Session{
			ID:        sessionID,
			AccountID: userData.ID,
			UserAgent: sessionTrackReq.UserAgent,
			IPAddress: sessionTrackReq.IPAddress,
			ExpiresAt: expiresAt,
		})
		if err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.LoginResult{}, err
	}

	metrics.ObserveLogin("success")
	metrics.ObserveAttendance("login")

	return auth.LoginResult{
		LoginResponse: auth.LoginResponse{
			Message:    "Login successful",
			FirstLogin: profile.IsFirstLogin,
			ID:         userData.ID,
			LoginID:    userData.Username,
			Name:       userData.FullName(),
			Email:      userData.Email,
			Role:       string(userData.Role()),
		},
		SessionToken:     token,
		SessionExpiresAt: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
// The session is revoked even when closing the attendance day fails.
func (a *AuthServiceImpl) Logout(ctx context.Context, caller auth.Caller) error {
	now, today := a.clock.Today()

	closed, closeErr := a.attendances.CloseDay(ctx, caller.AccountID, today, now)
	if closeErr != nil {
		closeErr = fmt.Errorf("failed to close attendance day: %w", closeErr)
	} else if closed {
		metrics.ObserveAttendance("logout")
	}

	var revokeErr error
	if err := a.sessions.Revoke(ctx, caller.SessionID); err != nil {
		revokeErr = fmt.Errorf("failed to revoke session: %w", err)
	}

	return errors.Join(closeErr, revokeErr)
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, caller auth.Caller, req auth.ChangePasswordRequest) error {
	userData, err := a.users.GetByID(ctx, caller.AccountID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	// The old password is checked before the new one is validated.
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrOldPasswordIncorrect
	}

	if err := req.Validate(); err != nil {
		return err
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := a.users.UpdatePassword(txCtx, userData.ID, hashed); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := a.profiles.SetFirstLogin(txCtx, userData.ID, false); err != nil {
			return fmt.Errorf("failed to clear first login flag: %w", err)
		}
		if err := a.sessions.Revoke(txCtx, caller.SessionID); err != nil {
			return fmt.Errorf("failed to revoke session: %w", err)
		}
		slog.Info("password changed", "account_id", userData.ID)
		return nil
	})
}

// ResolveSession implements auth.AuthService.
func (a *AuthServiceImpl) ResolveSession(ctx context.Context, sessionID string) (auth.Caller, error) {
	session, err := a.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return auth.Caller{}, auth.ErrInvalidToken
		}
		return auth.Caller{}, fmt.Errorf("failed to get session: %w", err)
	}

	if session.RevokedAt != nil {
		return auth.Caller{}, auth.ErrSessionRevoked
	}
	if !session.ExpiresAt.After(a.clock.Now()) {
		return auth.Caller{}, auth.ErrInvalidToken
	}
	if !session.AccountActive {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	return auth.Caller{
		AccountID: session.AccountID,
		Username:  session.Username,
		IsAdmin:   session.IsStaff,
		SessionID: session.ID,
	}, nil
}

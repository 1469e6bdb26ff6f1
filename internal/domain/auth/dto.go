package auth

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	// LoginID is accepted as an alias of Username; the web client posts login_id.
	LoginID  string `json:"login_id,omitempty"`
	Password string `json:"password"`
}

// Identifier returns the username, falling back to login_id.
func (r *LoginRequest) Identifier() string {
	if !validator.IsEmpty(r.Username) {
		return r.Username
	}
	return r.LoginID
}

// Validate rejects blank credentials as invalid credentials, not as field errors.
func (r *LoginRequest) Validate() error {
	if validator.IsEmpty(r.Identifier()) || validator.IsEmpty(r.Password) {
		return ErrInvalidCredentials
	}

	var errs validator.ValidationErrors
	if len(r.Identifier()) > 150 {
		errs.Add("username", "username must not exceed 150 characters")
	}
	if len(r.Password) > 255 {
		errs.Add("password", "password must not exceed 255 characters")
	}
	return errs.Err()
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (r *ChangePasswordRequest) Validate() error {
	errs := validator.Struct(r)

	if !validator.IsEmpty(r.ConfirmPassword) && r.ConfirmPassword != r.NewPassword {
		errs.Add("confirm_password", "Passwords do not match")
	}

	return errs.Err()
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type LoginResponse struct {
	Message    string `json:"message"`
	FirstLogin bool   `json:"first_login"`
	ID         int64  `json:"id"`
	LoginID    string `json:"login_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// LoginResult carries the response body plus the session token for the cookie.
type LoginResult struct {
	LoginResponse
	SessionToken     string
	SessionExpiresAt time.Time
}

type MessageResponse struct {
	Message string `json:"message"`
}

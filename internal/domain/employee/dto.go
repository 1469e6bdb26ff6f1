package employee

import (
	"strings"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=150"`
	LastName    string `json:"last_name" validate:"required,max=150"`
	Email       string `json:"email" validate:"required,email,max=254"`
	JoiningDate string `json:"joining_date" validate:"required,date"`

	// Parsed
	JoinedOn time.Time `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	errs := validator.Struct(r)
	if joinedOn, ok := validator.IsValidDate(r.JoiningDate); ok {
		r.JoinedOn = joinedOn
	}
	return errs.Err()
}

type CreateEmployeeResponse struct {
	Message           string `json:"message"`
	LoginID           string `json:"login_id"`
	TemporaryPassword string `json:"temporary_password"`
}

type EmployeeListItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type EmployeeDetailResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type ProfileResponse struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsActive   bool   `json:"is_active"`
	Role       string `json:"role"`
	FirstLogin bool   `json:"first_login"`
}

type ToggleStatusResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

func ToListItem(u user.User) EmployeeListItem {
	return EmployeeListItem{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.FullName(),
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

func ToDetail(u user.User) EmployeeDetailResponse {
	return EmployeeDetailResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

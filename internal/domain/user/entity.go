package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Staff account - manages employees, leave and attendance
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	IsActive     bool
	IsStaff      bool
	JoinedOn     time.Time
	CreatedAt    time.Time
}

// FullName joins first and last name the way the client displays it
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Role derives the access role from the staff flag
func (u *User) Role() Role {
	return RoleFor(u.IsStaff)
}

func RoleFor(isStaff bool) Role {
	if isStaff {
		return RoleAdmin
	}
	return RoleEmployee
}

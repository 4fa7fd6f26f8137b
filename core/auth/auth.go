// Package auth establishes the current actor from stored credentials and
// holds the role-based access rules gating every mutating operation.
package auth

import (
	"errors"

	"github.com/motembo/campus/core"
	"github.com/motembo/campus/core/user"
)

var (
	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// alike, so failed logins never reveal which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPermissionDenied = errors.New("permission denied")
)

// Session is the authenticated actor's identity and role for the duration
// of one interactive run. All access checks derive from it.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Service struct {
	users *user.Service
}

func NewService(users *user.Service) *Service {
	return &Service{users: users}
}

// Authenticate scans the user table for an exact (username, password) match.
func (svc *Service) Authenticate(uname, pwd string) (Session, error) {
	usr, err := svc.users.GetByUsername(core.CleanString(uname, true /* lower */))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !usr.CheckPassword(pwd) {
		return Session{}, ErrInvalidCredentials
	}
	return Session{Username: usr.Username, Role: usr.Role}, nil
}

// CanMessage reports whether senderRole may message recipientRole:
// students reach faculty and admins, faculty reach students and admins,
// admins reach anyone.
func CanMessage(senderRole, recipientRole string) bool {
	switch senderRole {
	case user.RoleStudent:
		return recipientRole == user.RoleFaculty || recipientRole == user.RoleAdmin
	case user.RoleFaculty:
		return recipientRole == user.RoleStudent || recipientRole == user.RoleAdmin
	case user.RoleAdmin:
		return true
	}
	return false
}

// CanManageUsers: only admins create, delete or list accounts.
func CanManageUsers(role string) bool {
	return role == user.RoleAdmin
}

// CanManageGrades: faculty record grades; admins modify them.
func CanManageGrades(role string) bool {
	return role == user.RoleFaculty || role == user.RoleAdmin
}

// CanManageAttendance: attendance is marked by faculty only.
func CanManageAttendance(role string) bool {
	return role == user.RoleFaculty
}

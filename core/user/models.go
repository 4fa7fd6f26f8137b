package user

import (
	"github.com/motembo/campus/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleFaculty, RoleAdmin}

// ValidRole reports whether role is one of the recognized roles.
// Roles are stored lowercase; callers normalize input first.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// CheckPassword does an exact match against the stored credential.
func (u User) CheckPassword(pwd string) bool {
	return u.Password != "" && u.Password == pwd
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }

// NewUser contains information needed to register a new User.
type NewUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Role = core.CleanString(nu.Role, true /* lower */)

	if err := core.Validate.Struct(nu); err != nil {
		if core.FailedTag(err, roleTag) {
			return core.NewValidationError(ErrInvalidRole, core.FieldError{Field: "role", Error: roleText})
		}
		return core.TranslateError(err)
	}
	return svc.CheckUniqueness(nu.Username)
}

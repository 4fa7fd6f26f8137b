package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/motembo/campus/core"
)

var (
	roleTag  = "role"
	roleText = "invalid role"
)

func init() {
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)
}

// roleValidation checks that the provided role is in AllRoles.
func roleValidation(fl validator.FieldLevel) bool {
	return ValidRole(core.CleanString(fl.Field().String(), true /* lower */))
}

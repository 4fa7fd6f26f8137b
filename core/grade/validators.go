package grade

import (
	"github.com/go-playground/validator/v10"

	"github.com/motembo/campus/core"
)

var (
	letterTag  = "letter"
	letterText = "invalid letter grade"
)

func init() {
	_ = core.Validate.RegisterValidation(letterTag, letterValidation)
	core.RegisterCustomTranslation(letterTag, letterText)
}

func letterValidation(fl validator.FieldLevel) bool {
	return ValidLetter(core.CleanString(fl.Field().String()))
}

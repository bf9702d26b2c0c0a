package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/jakartamandarin/console/core"
)

var (
	userRoleTag  = "userrole"
	userRoleText = "invalid role"
)

func init() {
	_ = core.Validate.RegisterValidation(userRoleTag, userRoleValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, userRoleTag, userRoleText)
}

func userRoleValidation(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

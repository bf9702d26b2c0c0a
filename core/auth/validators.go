package auth

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/jakartamandarin/console/core"
)

var (
	// password policy
	pwdMaxSim = 0.7

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdAttrSimText   = "password is too similar to the email address"
	errPwdTooSimilar = errors.New(pwdAttrSimText)
)

func init() {
	_ = core.Validate.RegisterValidation(pwdNotAllNumTag, pwdNotAllNumValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, pwdNotAllNumTag, pwdNotAllNumText)
}

// NewPassword is the reset-password form.
type NewPassword struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,pwdnotallnum"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (np *NewPassword) Validate() error {
	np.Email = core.CleanString(np.Email)

	if err := core.TranslateError(core.Validate.Struct(np)); err != nil {
		return err
	}

	// reject passwords too close to the account's email
	if similarity(np.Password, np.Email) >= pwdMaxSim {
		return core.NewValidationError(
			errPwdTooSimilar,
			core.FieldError{Field: "password", Error: pwdAttrSimText},
		)
	}
	return nil
}

func pwdNotAllNumValidation(fl validator.FieldLevel) bool {
	pwd := fl.Field().String()
	for _, char := range pwd {
		if !unicode.IsDigit(char) {
			return true
		}
	}
	return len(pwd) == 0
}

func similarity(pwd, attr string) float64 {
	if attr == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(pwd, ""), strings.Split(attr, "")).QuickRatio()
}

// forms.go - Sign-up and login forms and their validation messages

package handlers

import (
	"errors"

	"go-tour-booking/i18n"

	"github.com/go-playground/validator/v10" // Validation errors reported by gin binding
	"golang.org/x/text/language"
)

// SignUpForm is the sign-up input. All fields are required and the
// confirmation must repeat the password.
type SignUpForm struct {
	FirstName            string `form:"first_name" binding:"required"`
	LastName             string `form:"last_name" binding:"required"`
	Email                string `form:"email" binding:"required,email"`
	Password             string `form:"password" binding:"required"`
	PasswordConfirmation string `form:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginForm struct { // Struct for login input
	Email    string `form:"email" binding:"required,email"` // Email (required)
	Password string `form:"password" binding:"required"`    // Password (required)
}

// formFields maps struct fields to the input names used in the templates.
var formFields = map[string]string{
	"FirstName":            "first_name",
	"LastName":             "last_name",
	"Email":                "email",
	"Password":             "password",
	"PasswordConfirmation": "password_confirmation",
}

// FieldErrors turns a binding error into one localised message per input.
// The bool is false when err is not a validation failure.
func FieldErrors(err error, lang language.Tag) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name, ok := formFields[fe.StructField()]
		if !ok {
			name = fe.Field()
		}
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = i18n.T(lang, messageKey(fe.Tag()))
	}
	return out, true
}

func messageKey(tag string) string {
	switch tag {
	case "required":
		return "field.required"
	case "email":
		return "field.email"
	case "eqfield":
		return "field.password_mismatch"
	default:
		return "field.invalid"
	}
}

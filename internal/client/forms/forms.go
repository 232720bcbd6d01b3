package forms

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/instaguard/instaguard/internal/common"
)

// User-facing messages.
const (
	MsgRequiredFields  = "Please fill in all the required fields!"
	MsgInvalidEmail    = "Please enter a valid email address!"
	MsgPasswordsDiffer = "Passwords do not match!"
	MsgWeakPassword    = "Password must be at least 8 characters long, include an uppercase letter, a number, and a special character."
	MsgSignupCaptcha   = "Please complete the reCAPTCHA verification."

	MsgLoginCaptcha = "Please complete the CAPTCHA."
	MsgLoginInvalid = "Invalid form data."

	MsgProfileCaptcha       = "Please complete the reCAPTCHA."
	MsgProfilePasswordsDiff = "Passwords do not match."

	MsgReportFields     = "Please fill in both fields."
	MsgUsernameRequired = "Username is required"
	MsgImpression       = "Please select an impression."
	MsgContactFields    = "All fields are required."
	MsgInvalidMetrics   = "Please enter valid profile metrics."

	MsgAdminPasswordFields = "All fields are required"
	MsgAdminWeakPassword   = "Password must be at least 8 characters long and include uppercase, lowercase, number, and special character."

	MsgSiteName     = "Site name is required."
	MsgSupportEmail = "Please enter a valid support email."
)

// Error is a failed form rule.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Is lets callers match any form failure with common.ErrorValidation.
func (e *Error) Is(target error) bool { return target == common.ErrorValidation }

func fail(msg string) error { return &Error{msg: msg} }

// NewError reports a failure found outside this package, such as a number
// that did not parse, the same way the form checks do.
func NewError(msg string) error { return fail(msg) }

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	signupSymbols = `!@#$%^&*()_+[]{};':"\|,.<>/?`
	adminSymbols  = `@$!%*?&`
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "useremail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "strongpassword", func(fl validator.FieldLevel) bool {
		return signupStrength(fl.Field().String())
	})
	mustRegister(v, "adminpassword", func(fl validator.FieldLevel) bool {
		return adminStrength(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// signupStrength: at least 8 characters with an ASCII uppercase letter, an
// ASCII digit and one symbol from the signup set.
func signupStrength(s string) bool {
	var upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(signupSymbols, r):
			symbol = true
		}
	}
	return len([]rune(s)) >= 8 && upper && digit && symbol
}

// adminStrength: at least 8 characters drawn only from ASCII letters,
// digits and the admin symbol set, with one of each class.
func adminStrength(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(adminSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return upper && lower && digit && symbol
}

// valid reports whether value passes tag. An unknown tag is a programming
// error and panics.
func valid(value any, tag string) bool {
	err := validate.Var(value, tag)
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		panic(err)
	}
	return err == nil
}

func filled(values ...string) bool {
	for _, v := range values {
		if !valid(v, "required") {
			return false
		}
	}
	return true
}

package services

import (
	"errors"

	"github.com/instaguard/instaguard/internal/common"
)

// Error is a failure the caller is meant to read. Kind is one of the
// common sentinels and decides how a transport reports it; Message is shown
// as is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// AsError extracts the *Error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Messages returned to API callers. They match what the web frontend was
// written against, punctuation included.
const (
	MsgInvalidCaptcha      = "Invalid CAPTCHA. Please try again."
	MsgLoginFields         = "Email and Password are required!"
	MsgUserNotFound        = "User not found!"
	MsgVerifyEmailFirst    = "Please verify your email first!"
	MsgInvalidPassword     = "Invalid password!"
	MsgSignupFields        = "Please fill in all the required fields!"
	MsgPasswordsDiffer     = "Passwords do not match!"
	MsgInvalidEmail        = "Invalid email format!"
	MsgEmailTaken          = "Email already registered!"
	MsgInvalidVerifyToken  = "Invalid or expired token!"
	MsgMissingGoogleToken  = "Missing Google id_token"
	MsgInvalidGoogleToken  = "Invalid Google token"
	MsgGoogleEmailMissing  = "Google token missing email"
	MsgMissingToken        = "Missing token"
	MsgInvalidToken        = "Invalid token"
	MsgTokenExpired        = "Token expired"
	MsgTokenUserNotFound   = "User not found"
	MsgCaptchaRequired     = "CAPTCHA is required"
	MsgCaptchaFailed       = "CAPTCHA verification failed"
	MsgPasswordFields      = "All fields are required"
	MsgUnauthorizedAccess  = "Unauthorized access"
	MsgCurrentPasswordBad  = "Current password is incorrect"
	MsgWeakPassword        = "Password must be at least 8 characters long and include uppercase, lowercase, number, and special character."
	MsgReportFields        = "Missing username or reason"
	MsgUsernameRequired    = "Username is required"
	MsgUsernameUnknown     = "Username does not exist. Try another username."
	MsgImpressionRequired  = "Impression is required"
	MsgContactFields       = "All fields are required."
	MsgSettingsMissing     = "Missing settings data"
	MsgUnknownExport       = "Unknown export kind"
	MsgInvalidFeatures     = "Invalid profile metrics"
	MsgModelUnavailable    = "Prediction failed: model unavailable"
	MsgAdminRequired       = "Admin access required"
	MsgPermissionDenied    = "Permission denied! Admin access required."
	MsgFeedbackAdminOnly   = "Unauthorized. Please log in as admin."
	MsgResultsAdminOnly    = "Access denied. Admins only."
	MsgTooManyRequests     = "Too many requests, please try again later."
	MsgInternalServerError = "Internal server error!"
)

var (
	errCaptcha       = fail(common.ErrorValidation, MsgInvalidCaptcha)
	errUserNotFound  = fail(common.ErrorNotFound, MsgUserNotFound)
	errWrongPassword = fail(common.ErrorUnauthorized, MsgInvalidPassword)
)

package forms

import "github.com/instaguard/instaguard/internal/client/models"

// Signup checks the registration form in order: required fields, email
// shape, matching passwords, password strength and finally the captcha.
func Signup(req models.SignupRequest, needCaptcha bool) error {
	switch {
	case !filled(req.FullName, req.Email, req.Password, req.Mobile):
		return fail(MsgRequiredFields)
	case !valid(req.Email, "useremail"):
		return fail(MsgInvalidEmail)
	case req.Password != req.ConfirmPassword:
		return fail(MsgPasswordsDiffer)
	case !valid(req.Password, "strongpassword"):
		return fail(MsgWeakPassword)
	case needCaptcha && !filled(req.Captcha):
		return fail(MsgSignupCaptcha)
	}
	return nil
}

func Login(req models.LoginRequest, needCaptcha bool) error {
	switch {
	case needCaptcha && !filled(req.Captcha):
		return fail(MsgLoginCaptcha)
	case !valid(req.Email, "required,email"), !filled(req.Password):
		return fail(MsgLoginInvalid)
	}
	return nil
}

// UpdateProfile leaves the password alone when it is empty.
func UpdateProfile(req models.UpdateProfileRequest, confirm string, needCaptcha bool) error {
	switch {
	case needCaptcha && !filled(req.Captcha):
		return fail(MsgProfileCaptcha)
	case req.Password != "" && req.Password != confirm:
		return fail(MsgProfilePasswordsDiff)
	}
	return nil
}

// AdminPassword checks the admin password change form.
func AdminPassword(req models.UpdatePasswordRequest) error {
	switch {
	case !filled(req.CurrentPassword, req.NewPassword):
		return fail(MsgAdminPasswordFields)
	case !valid(req.NewPassword, "adminpassword"):
		return fail(MsgAdminWeakPassword)
	}
	return nil
}

func Contact(req models.ContactRequest) error {
	if !filled(req.Name, req.Email, req.Message) {
		return fail(MsgContactFields)
	}
	if !valid(req.Email, "useremail") {
		return fail(MsgInvalidEmail)
	}
	return nil
}

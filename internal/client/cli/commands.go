package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/services"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

func (a *App) commands(v view) []command {
	switch v {
	case viewUser:
		return []command{
			{"predict", a.Predict},
			{"check", a.Check},
			{"report", a.Report},
			{"reports", a.Reports},
			{"myreports", a.MyReports},
			{"feedback", a.Feedback},
			{"profile", a.Profile},
			{"editprofile", a.EditProfile},
			{"history", a.History},
			{"whoami", a.WhoAmI},
			{"contact", a.Contact},
			{"logout", a.Logout},
		}
	case viewAdmin:
		return []command{
			{"dashboard", a.Dashboard},
			{"users", a.Users},
			{"deluser", a.DeleteUser},
			{"allreports", a.AllReports},
			{"feedbacks", a.Feedbacks},
			{"results", a.Results},
			{"analytics", a.Dashboard},
			{"settings", a.Settings},
			{"editsettings", a.EditSettings},
			{"passwd", a.ChangePassword},
			{"export", a.Export},
			{"whoami", a.WhoAmI},
			{"logout", a.Logout},
		}
	default:
		return []command{
			{"login", a.Login},
			{"google", a.GoogleLogin},
			{"register", a.Register},
			{"check", a.Check},
			{"contact", a.Contact},
		}
	}
}

// handleError prints err as one line. An expired session sends the user
// back to the guest view.
func (a *App) handleError(ctx context.Context, err error) {
	a.logger.Debug(ctx, "command failed", "error", err)

	if errors.Is(err, services.ErrSessionExpired) || errors.Is(err, client.ErrNoToken) {
		a.setView(viewAnonymous)
	}
	a.println("Error: " + userMessage(err))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrSessionExpired):
		return "Your session has expired. Please log in again."
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. Please try again later."
	default:
		return client.Message(err)
	}
}

func invalidNumber() error {
	return forms.NewError(forms.MsgInvalidMetrics)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(label string) (string, error) {
	return getSimpleText(a.reader, label, a.out)
}

// captcha returns the token to send with a captcha-protected form: the one
// configured up front, or one the user pastes after solving the challenge.
func (a *App) captcha() (string, error) {
	if a.config.CaptchaToken != "" {
		return a.config.CaptchaToken, nil
	}
	if a.config.RecaptchaSiteKey == "" {
		return "", nil
	}
	return a.prompt(fmt.Sprintf("Solve the reCAPTCHA for site key %s and paste the token", a.config.RecaptchaSiteKey))
}

package cli

import (
	"context"
	"strings"

	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/common"
)

// Predict classifies an Instagram username. The username may be given as
// an argument or typed at the prompt.
func (a *App) Predict(ctx context.Context, args []string) error {
	username := strings.Join(args, " ")
	if username == "" {
		var err error
		if username, err = a.prompt("Instagram username"); err != nil {
			return err
		}
	}

	res, err := a.predictions.ByUsername(ctx, username)
	if err != nil {
		return err
	}

	renderPrediction(a.out, res)
	return nil
}

func (a *App) Report(ctx context.Context, _ []string) error {
	username, err := a.prompt("Instagram username to report")
	if err != nil {
		return err
	}
	reason, err := getMultiline(a.reader, "Reason", a.out)
	if err != nil {
		return err
	}

	if _, err := a.reports.Submit(ctx, models.ReportRequest{Username: username, Reason: reason}); err != nil {
		return err
	}

	a.println("Report submitted successfully.")
	renderReports(a.out, a.reports.Held())
	return nil
}

func (a *App) Reports(ctx context.Context, _ []string) error {
	list, err := a.reports.List(ctx)
	if err != nil {
		return err
	}
	renderReports(a.out, list)
	return nil
}

func (a *App) MyReports(ctx context.Context, _ []string) error {
	list, err := a.reports.Mine(ctx)
	if err != nil {
		return err
	}
	renderReports(a.out, list)
	return nil
}

func (a *App) Feedback(ctx context.Context, _ []string) error {
	impression, err := a.prompt("Overall impression (" + strings.Join(models.Impressions, ", ") + ")")
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "Your feedback", a.out)
	if err != nil {
		return err
	}

	msg, err := a.feedback.Submit(ctx, models.FeedbackRequest{Impression: impression, Feedback: text})
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}
	a.printf("Full name: %s\nEmail:     %s\n", p.FullName, p.Email)
	return nil
}

// EditProfile changes the full name and, when a new password is typed,
// the password. An empty password keeps the current one.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	var req models.UpdateProfileRequest
	var err error

	if req.FullName, err = a.prompt("Full name"); err != nil {
		return err
	}

	password, err := getPassword(a.out, "New password (leave empty to keep)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var confirm []byte
	if len(password) > 0 {
		if confirm, err = getPassword(a.out, "Confirm new password"); err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)
	}
	req.Password = string(password)

	if req.Captcha, err = a.captcha(); err != nil {
		return err
	}

	msg, err := a.profile.Update(ctx, req, string(confirm))
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) History(ctx context.Context, _ []string) error {
	list, err := a.profile.History(ctx)
	if err != nil {
		return err
	}
	renderHistory(a.out, list)
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	info, err := a.profile.UserInfo(ctx)
	if err != nil {
		return err
	}
	a.printf("%s <%s> (%s)\n", info.FullName, info.Email, info.Role)
	return nil
}

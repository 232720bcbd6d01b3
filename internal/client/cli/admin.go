package cli

import (
	"context"

	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/common"
)

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	d, err := a.admin.Dashboard(ctx)
	if err != nil {
		return err
	}
	renderDashboard(a.out, d)
	return nil
}

func (a *App) Users(ctx context.Context, _ []string) error {
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	renderUsers(a.out, users)
	return nil
}

// DeleteUser removes the user with the given id after a y/N confirmation
// and shows what is left of the list.
func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: deluser <id>")
		return nil
	}

	answer, err := a.prompt("Are you sure you want to delete user " + args[0] + "? (y/N)")
	if err != nil {
		return err
	}
	if !IsYes(answer) {
		a.println("Cancelled.")
		return nil
	}

	msg, remaining, err := a.admin.DeleteUser(ctx, args[0])
	if err != nil {
		return err
	}

	a.println(msg)
	renderUsers(a.out, remaining)
	return nil
}

func (a *App) AllReports(ctx context.Context, _ []string) error {
	list, err := a.admin.Reports(ctx)
	if err != nil {
		return err
	}
	renderReports(a.out, list)
	return nil
}

func (a *App) Feedbacks(ctx context.Context, _ []string) error {
	list, err := a.admin.Feedback(ctx)
	if err != nil {
		return err
	}
	renderFeedback(a.out, list)
	return nil
}

func (a *App) Results(ctx context.Context, _ []string) error {
	list, err := a.admin.ProfileResults(ctx)
	if err != nil {
		return err
	}
	renderResults(a.out, list)
	return nil
}

func (a *App) Settings(ctx context.Context, _ []string) error {
	s, err := a.admin.Settings(ctx)
	if err != nil {
		return err
	}
	renderSettings(a.out, s)
	return nil
}

// EditSettings prompts for every field, offering the current value as the
// default.
func (a *App) EditSettings(ctx context.Context, _ []string) error {
	cur, err := a.admin.Settings(ctx)
	if err != nil {
		return err
	}
	s := *cur

	if s.SiteName, err = a.promptDefault("Site name", s.SiteName); err != nil {
		return err
	}
	if s.SupportEmail, err = a.promptDefault("Support email", s.SupportEmail); err != nil {
		return err
	}
	if s.NotifyReports, err = a.promptBool("Notify on new reports", s.NotifyReports); err != nil {
		return err
	}
	if s.MaintenanceMode, err = a.promptBool("Maintenance mode", s.MaintenanceMode); err != nil {
		return err
	}

	msg, err := a.admin.SaveSettings(ctx, s)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	msg, err := a.profile.ChangePassword(ctx, models.UpdatePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

// Export downloads a CSV export of reports, results or feedback into the
// data directory.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: export <%s|%s|%s>\n", models.ExportReports, models.ExportResults, models.ExportFeedback)
		return nil
	}

	path, err := a.admin.Export(ctx, args[0])
	if err != nil {
		return err
	}
	a.println("Saved to " + path)
	return nil
}

func (a *App) promptDefault(label, def string) (string, error) {
	s, err := a.prompt(label + " [" + def + "]")
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

func (a *App) promptBool(label string, def bool) (bool, error) {
	d := "n"
	if def {
		d = "y"
	}
	s, err := a.promptDefault(label+" (y/n)", d)
	if err != nil {
		return false, err
	}
	return IsYes(s), nil
}

package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/instaguard/instaguard/internal/client/models"
)

const (
	noReports  = "No reports found."
	noFeedback = "No feedback available."
	noResults  = "No results found."
	noUsers    = "No users found."
	noHistory  = "No activity yet."
)

const dateLayout = "2006-01-02 15:04"

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

func formatConfidence(c *float64) string {
	if c == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *c*100)
}

func renderPrediction(w io.Writer, p *models.Prediction) {
	fmt.Fprintf(w, "Username:   %s\n", p.Username)
	fmt.Fprintf(w, "Prediction: %s\n", p.Prediction)
	fmt.Fprintf(w, "Confidence: %s\n", formatConfidence(p.Confidence))
	if p.Message != "" {
		fmt.Fprintln(w, p.Message)
	}
	if p.Note != "" {
		fmt.Fprintln(w, "Note: "+p.Note)
	}
}

func renderReports(w io.Writer, list []models.Report) {
	if len(list) == 0 {
		fmt.Fprintln(w, noReports)
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "USERNAME\tREASON\tSTATUS\tREPORTED")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Username, r.Reason, r.Status, formatTime(r.DateReported.Time))
	}
	_ = tw.Flush()
}

func renderFeedback(w io.Writer, list []models.Feedback) {
	if len(list) == 0 {
		fmt.Fprintln(w, noFeedback)
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "NAME\tEMAIL\tIMPRESSION\tFEEDBACK\tDATE")
	for _, f := range list {
		email := f.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.Name, email, f.Impression, f.Feedback, formatTime(f.Timestamp.Time))
	}
	_ = tw.Flush()
}

func renderResults(w io.Writer, list []models.ProfileResult) {
	if len(list) == 0 {
		fmt.Fprintln(w, noResults)
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "USERNAME\tPREDICTION\tCONFIDENCE\tMODEL\tDATE")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Username, r.Prediction, formatConfidence(r.Confidence), r.ModelVersion, formatTime(r.Timestamp.Time))
	}
	_ = tw.Flush()
}

func renderUsers(w io.Writer, list []models.User) {
	if len(list) == 0 {
		fmt.Fprintln(w, noUsers)
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tMOBILE\tROLE\tVERIFIED")
	for _, u := range list {
		verified := "no"
		if u.IsVerified {
			verified = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Mobile, u.Role, verified)
	}
	_ = tw.Flush()
}

func renderHistory(w io.Writer, list []models.Activity) {
	if len(list) == 0 {
		fmt.Fprintln(w, noHistory)
		return
	}

	// newest first
	sorted := make([]models.Activity, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp.Time)
	})

	tw := table(w)
	fmt.Fprintln(tw, "DATE\tACTION\tDETAILS")
	for _, a := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatTime(a.Timestamp.Time), a.Action, a.Details)
	}
	_ = tw.Flush()
}

func renderDashboard(w io.Writer, d *models.Dashboard) {
	a := d.Analytics
	fmt.Fprintf(w, "Users: %d (%d verified)\n", a.TotalUsers, a.VerifiedUsers)
	fmt.Fprintf(w, "Reports: %d (%d pending)\n", a.TotalReports, a.PendingReports)

	if len(a.RecentUsers) > 0 {
		fmt.Fprintln(w, "\nRecent users:")
		tw := table(w)
		for _, u := range a.RecentUsers {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", u.FullName, u.Email, formatTime(u.CreatedAt.Time))
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w, "\nRecent activity:")
	if len(d.Activities) == 0 {
		fmt.Fprintln(w, "  "+noHistory)
		return
	}
	tw := table(w)
	for _, act := range d.Activities {
		fmt.Fprintf(tw, "  %s\t%s\n", act.Timestamp, act.Description)
	}
	_ = tw.Flush()
}

func renderSettings(w io.Writer, s *models.Settings) {
	tw := table(w)
	fmt.Fprintf(tw, "Site name:\t%s\n", s.SiteName)
	fmt.Fprintf(tw, "Support email:\t%s\n", s.SupportEmail)
	fmt.Fprintf(tw, "Notify on reports:\t%t\n", s.NotifyReports)
	fmt.Fprintf(tw, "Maintenance mode:\t%t\n", s.MaintenanceMode)
	_ = tw.Flush()
}

package forms

import (
	"slices"
	"strings"

	"github.com/instaguard/instaguard/internal/client/models"
)

func Report(req models.ReportRequest) error {
	if !filled(strings.TrimSpace(req.Username), strings.TrimSpace(req.Reason)) {
		return fail(MsgReportFields)
	}
	return nil
}

func Predict(username string) error {
	if !filled(strings.TrimSpace(username)) {
		return fail(MsgUsernameRequired)
	}
	return nil
}

func Feedback(req models.FeedbackRequest) error {
	if !slices.Contains(models.Impressions, req.Impression) {
		return fail(MsgImpression)
	}
	return nil
}

// FeatureCheck validates a hand-entered metric set. Flags are 0 or 1,
// ratios lie in [0,1] and counts are non-negative.
func FeatureCheck(req models.FeatureCheckRequest, needCaptcha bool) error {
	if needCaptcha && !filled(req.Captcha) {
		return fail(MsgSignupCaptcha)
	}

	f := req.FeatureVector
	checks := []struct {
		value any
		tag   string
	}{
		{f.ProfilePic, "oneof=0 1"},
		{f.UsernameLengthRatio, "min=0,max=1"},
		{f.FullnameWords, "min=0"},
		{f.FullnameLengthRatio, "min=0,max=1"},
		{f.NameMatchesUsername, "oneof=0 1"},
		{f.BioLength, "min=0"},
		{f.HasExternalURL, "oneof=0 1"},
		{f.IsPrivate, "oneof=0 1"},
		{f.PostsCount, "min=0"},
		{f.FollowersCount, "min=0"},
		{f.FollowingCount, "min=0"},
	}
	for _, c := range checks {
		if !valid(c.value, c.tag) {
			return fail(MsgInvalidMetrics)
		}
	}
	return nil
}

func Settings(s models.Settings) error {
	switch {
	case !filled(strings.TrimSpace(s.SiteName)):
		return fail(MsgSiteName)
	case !valid(s.SupportEmail, "required,email"):
		return fail(MsgSupportEmail)
	}
	return nil
}

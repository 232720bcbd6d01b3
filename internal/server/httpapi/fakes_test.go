package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/services"
)

var (
	testUser  = &models.User{ID: "00000000-0000-0000-0000-00000000000a", FullName: "Ayesha Khan", Email: "ayesha@example.com", Role: common.RoleUser}
	testAdmin = &models.User{ID: "00000000-0000-0000-0000-00000000000b", FullName: "Admin", Email: "admin@example.com", Role: common.RoleAdmin}
)

func svcErr(kind error, msg string) error { return &services.Error{Kind: kind, Message: msg} }

type fakeAuth struct {
	signup      func(services.SignupInput) error
	verifyEmail func(string) error
	login       func(email, password, captcha string) (*services.LoginResult, error)
	google      func(idToken, captcha string) (*services.GoogleResult, error)
}

func (f *fakeAuth) Signup(ctx context.Context, in services.SignupInput) error { return f.signup(in) }

func (f *fakeAuth) VerifyEmail(ctx context.Context, token string) error { return f.verifyEmail(token) }

func (f *fakeAuth) Login(ctx context.Context, email, password, captchaToken, remoteIP string) (*services.LoginResult, error) {
	return f.login(email, password, captchaToken)
}

func (f *fakeAuth) GoogleSignIn(ctx context.Context, idToken, captchaToken, remoteIP string) (*services.GoogleResult, error) {
	return f.google(idToken, captchaToken)
}

// Authenticate knows two tokens; "broken" simulates a database failure.
func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*models.User, error) {
	switch token {
	case "user-token":
		return testUser, nil
	case "admin-token":
		return testAdmin, nil
	case "":
		return nil, svcErr(common.ErrorUnauthorized, services.MsgMissingToken)
	case "broken":
		return nil, errors.New("db error: down")
	default:
		return nil, svcErr(common.ErrorUnauthorized, services.MsgInvalidToken)
	}
}

type fakeAccount struct {
	updateProfile  func(user *models.User, fullName, password, captcha string) error
	history        []models.Activity
	updatePassword func(user *models.User, current, next string) error
}

func (f *fakeAccount) UpdateProfile(ctx context.Context, user *models.User, fullName, password, captchaToken, remoteIP string) error {
	return f.updateProfile(user, fullName, password, captchaToken)
}

func (f *fakeAccount) History(ctx context.Context, userID string) ([]models.Activity, error) {
	return f.history, nil
}

func (f *fakeAccount) UpdatePassword(ctx context.Context, user *models.User, current, next string) error {
	return f.updatePassword(user, current, next)
}

type fakeReports struct {
	list []models.Report
	err  error
}

func (f *fakeReports) Submit(ctx context.Context, reporter *models.User, username, reason string) (*models.Report, error) {
	if username == "" || reason == "" {
		return nil, svcErr(common.ErrorValidation, services.MsgReportFields)
	}
	r := models.Report{
		ID:           "r-new",
		Username:     username,
		Reason:       reason,
		Status:       common.ReportStatusPending,
		DateReported: time.UnixMilli(1740823200123).UTC(),
		UserEmail:    reporter.Email,
	}
	f.list = append([]models.Report{r}, f.list...)
	return &r, nil
}

func (f *fakeReports) Mine(ctx context.Context, reporter *models.User) ([]models.Report, error) {
	var out []models.Report
	for _, r := range f.list {
		if r.UserEmail == reporter.Email {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeReports) All(ctx context.Context) ([]models.Report, error) { return f.list, f.err }

type fakeFeedback struct {
	list []models.Feedback
	got  []string
}

func (f *fakeFeedback) Submit(ctx context.Context, author *models.User, impression, comment string) error {
	if impression == "" {
		return svcErr(common.ErrorValidation, services.MsgImpressionRequired)
	}
	f.got = append(f.got, author.ID, impression, comment)
	return nil
}

func (f *fakeFeedback) List(ctx context.Context) ([]models.Feedback, error) { return f.list, nil }

type fakeContact struct {
	err error
}

func (f *fakeContact) Send(ctx context.Context, name, email, message string) error { return f.err }

type fakeAdmin struct {
	users      []models.User
	deleted    []string
	analytics  *models.Analytics
	activities []models.RecentActivity
	err        error
	settings   models.Settings
}

func (f *fakeAdmin) Users(ctx context.Context) ([]models.User, error) { return f.users, f.err }

func (f *fakeAdmin) DeleteUser(ctx context.Context, id string) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return svcErr(common.ErrorNotFound, services.MsgUserNotFound)
}

func (f *fakeAdmin) Analytics(ctx context.Context) (*models.Analytics, error) {
	return f.analytics, f.err
}

func (f *fakeAdmin) RecentActivities(ctx context.Context) ([]models.RecentActivity, error) {
	return f.activities, f.err
}

func (f *fakeAdmin) Settings(ctx context.Context) (*models.Settings, error) {
	s := f.settings
	return &s, f.err
}

func (f *fakeAdmin) UpdateSettings(ctx context.Context, st models.Settings) (bool, error) {
	changed := st != f.settings
	f.settings = st
	return changed, f.err
}

type fakePrediction struct {
	predict func(username string) (*services.PredictionResult, error)
	check   func(fv models.FeatureVector, captcha string) (*models.Classification, error)
	results []models.ProfileResult
}

func (f *fakePrediction) Predict(ctx context.Context, user *models.User, username string) (*services.PredictionResult, error) {
	return f.predict(username)
}

func (f *fakePrediction) CheckFeatures(ctx context.Context, fv models.FeatureVector, captchaToken, remoteIP string) (*models.Classification, error) {
	return f.check(fv, captchaToken)
}

func (f *fakePrediction) Results(ctx context.Context) ([]models.ProfileResult, error) {
	return f.results, nil
}

type fakeExport struct {
	kinds []string
}

func (f *fakeExport) Export(ctx context.Context, kind string) (*services.ExportLink, error) {
	f.kinds = append(f.kinds, kind)
	return &services.ExportLink{
		Key:       "exports/" + kind + "/k.csv",
		URL:       "http://minio.local/instaguard/exports/" + kind + "/k.csv",
		ExpiresAt: time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC),
	}, nil
}

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allow, f.err
}

package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
)

// fakeClient implements client.Client. Each call is counted by name; the
// error returned for a call comes from errs[name].
type fakeClient struct {
	mu    sync.Mutex
	token string
	calls map[string]int
	errs  map[string]error

	loginResp  *models.LoginResponse
	googleResp *models.GoogleSignInResponse
	report     *models.Report
	reports    []models.Report
	prediction *models.Prediction
	check      *models.FeatureCheck
	users      []models.User
	analytics  *models.Analytics
	activities []models.RecentActivity
	settings   *models.Settings
	export     *models.ExportLink
	message    string

	lastLogin    models.LoginRequest
	lastSignup   models.SignupRequest
	lastPredict  string
	lastReport   models.ReportRequest
	lastSettings models.Settings
	lastDeleted  string
	lastProfile  models.UpdateProfileRequest
	lastFeedback models.FeedbackRequest
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}, errs: map[string]error{}, message: "ok"}
}

func (f *fakeClient) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeClient) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeClient) Ping(context.Context) error { return f.hit("ping") }

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.lastLogin = req
	if err := f.hit("login"); err != nil {
		return nil, err
	}
	return f.loginResp, nil
}

func (f *fakeClient) GoogleSignIn(_ context.Context, _ models.GoogleSignInRequest) (*models.GoogleSignInResponse, error) {
	if err := f.hit("google"); err != nil {
		return nil, err
	}
	return f.googleResp, nil
}

func (f *fakeClient) Signup(_ context.Context, req models.SignupRequest) (string, error) {
	f.lastSignup = req
	return f.message, f.hit("signup")
}

func (f *fakeClient) UserInfo(context.Context) (*models.UserInfo, error) {
	if err := f.hit("userinfo"); err != nil {
		return nil, err
	}
	return &models.UserInfo{FullName: "Ann", Email: "ann@x.io", Role: "user"}, nil
}

func (f *fakeClient) UpdatePassword(context.Context, models.UpdatePasswordRequest) (string, error) {
	return f.message, f.hit("password")
}

func (f *fakeClient) Profile(context.Context) (*models.Profile, error) {
	if err := f.hit("profile"); err != nil {
		return nil, err
	}
	return &models.Profile{FullName: "Ann", Email: "ann@x.io"}, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (string, error) {
	f.lastProfile = req
	return f.message, f.hit("updateprofile")
}

func (f *fakeClient) History(context.Context) ([]models.Activity, error) {
	return nil, f.hit("history")
}

func (f *fakeClient) CreateReport(_ context.Context, req models.ReportRequest) (*models.Report, error) {
	f.lastReport = req
	if err := f.hit("createreport"); err != nil {
		return nil, err
	}
	return f.report, nil
}

func (f *fakeClient) Reports(context.Context) ([]models.Report, error) {
	return f.reports, f.hit("reports")
}

func (f *fakeClient) MyReports(context.Context) ([]models.Report, error) {
	return f.reports, f.hit("myreports")
}

func (f *fakeClient) AdminReports(context.Context) ([]models.Report, error) {
	return f.reports, f.hit("adminreports")
}

func (f *fakeClient) Predict(_ context.Context, username string) (*models.Prediction, error) {
	f.lastPredict = username
	if err := f.hit("predict"); err != nil {
		return nil, err
	}
	return f.prediction, nil
}

func (f *fakeClient) CheckProfile(context.Context, models.FeatureCheckRequest) (*models.FeatureCheck, error) {
	if err := f.hit("check"); err != nil {
		return nil, err
	}
	return f.check, nil
}

func (f *fakeClient) ProfileResults(context.Context) ([]models.ProfileResult, error) {
	return nil, f.hit("results")
}

func (f *fakeClient) SubmitFeedback(_ context.Context, req models.FeedbackRequest) (string, error) {
	f.lastFeedback = req
	return f.message, f.hit("feedback")
}

func (f *fakeClient) AdminFeedback(context.Context) ([]models.Feedback, error) {
	return nil, f.hit("adminfeedback")
}

func (f *fakeClient) AdminUsers(context.Context) ([]models.User, error) {
	return f.users, f.hit("users")
}

func (f *fakeClient) DeleteUser(_ context.Context, id string) (string, error) {
	f.lastDeleted = id
	if err := f.hit("deleteuser"); err != nil {
		return "", err
	}
	f.users = slices.DeleteFunc(slices.Clone(f.users), func(u models.User) bool { return u.ID == id })
	return "User deleted successfully!", nil
}

func (f *fakeClient) Analytics(context.Context) (*models.Analytics, error) {
	if err := f.hit("analytics"); err != nil {
		return nil, err
	}
	return f.analytics, nil
}

func (f *fakeClient) RecentActivities(context.Context) ([]models.RecentActivity, error) {
	if err := f.hit("activities"); err != nil {
		return nil, err
	}
	return f.activities, nil
}

func (f *fakeClient) Settings(context.Context) (*models.Settings, error) {
	if err := f.hit("settings"); err != nil {
		return nil, err
	}
	return f.settings, nil
}

func (f *fakeClient) UpdateSettings(_ context.Context, s models.Settings) (string, error) {
	f.lastSettings = s
	return "Settings updated successfully", f.hit("updatesettings")
}

func (f *fakeClient) Export(context.Context, string) (*models.ExportLink, error) {
	if err := f.hit("export"); err != nil {
		return nil, err
	}
	return f.export, nil
}

func (f *fakeClient) Contact(context.Context, models.ContactRequest) (string, error) {
	return "Message sent successfully!", f.hit("contact")
}

var _ client.Client = (*fakeClient)(nil)

// fakeStore is an in-memory session.Repository.
type fakeStore struct {
	saved          *models.Session
	profileUpdated time.Time
	cleared        int
	saveErr        error
}

func (s *fakeStore) Save(_ context.Context, sess models.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = &sess
	return nil
}

func (s *fakeStore) Load(context.Context) (*models.Session, error) {
	if s.saved == nil {
		return nil, session.ErrNoSession
	}
	cp := *s.saved
	return &cp, nil
}

func (s *fakeStore) Clear(context.Context) error {
	s.cleared++
	s.saved = nil
	s.profileUpdated = time.Time{}
	return nil
}

func (s *fakeStore) MarkProfileUpdated(_ context.Context, at time.Time) error {
	s.profileUpdated = at
	return nil
}

func (s *fakeStore) ProfileUpdatedAt(context.Context) (time.Time, error) {
	return s.profileUpdated, nil
}

var _ session.Repository = (*fakeStore)(nil)

func unauthorized() error {
	return &client.APIError{Status: 401, Message: "Invalid or expired token"}
}

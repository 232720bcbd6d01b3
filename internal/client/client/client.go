package client

import (
	"context"

	"github.com/instaguard/instaguard/internal/client/models"
)

// Client is the backend API used by the client services.
type Client interface {
	SetToken(token string)
	Token() string
	Ping(ctx context.Context) error

	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (*models.GoogleSignInResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (string, error)

	UserInfo(ctx context.Context) (*models.UserInfo, error)
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) (string, error)
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (string, error)
	History(ctx context.Context) ([]models.Activity, error)

	CreateReport(ctx context.Context, req models.ReportRequest) (*models.Report, error)
	Reports(ctx context.Context) ([]models.Report, error)
	MyReports(ctx context.Context) ([]models.Report, error)
	AdminReports(ctx context.Context) ([]models.Report, error)

	Predict(ctx context.Context, username string) (*models.Prediction, error)
	CheckProfile(ctx context.Context, req models.FeatureCheckRequest) (*models.FeatureCheck, error)
	ProfileResults(ctx context.Context) ([]models.ProfileResult, error)

	SubmitFeedback(ctx context.Context, req models.FeedbackRequest) (string, error)
	AdminFeedback(ctx context.Context) ([]models.Feedback, error)

	AdminUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) (string, error)
	Analytics(ctx context.Context) (*models.Analytics, error)
	RecentActivities(ctx context.Context) ([]models.RecentActivity, error)
	Settings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s models.Settings) (string, error)
	Export(ctx context.Context, kind string) (*models.ExportLink, error)

	Contact(ctx context.Context, req models.ContactRequest) (string, error)
}

var _ Client = (*HTTPClient)(nil)

package httpapi

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/services"
)

type AuthService interface {
	Signup(ctx context.Context, in services.SignupInput) error
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, password, captchaToken, remoteIP string) (*services.LoginResult, error)
	GoogleSignIn(ctx context.Context, idToken, captchaToken, remoteIP string) (*services.GoogleResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type AccountService interface {
	UpdateProfile(ctx context.Context, user *models.User, fullName, password, captchaToken, remoteIP string) error
	History(ctx context.Context, userID string) ([]models.Activity, error)
	UpdatePassword(ctx context.Context, user *models.User, current, next string) error
}

type ReportService interface {
	Submit(ctx context.Context, reporter *models.User, username, reason string) (*models.Report, error)
	Mine(ctx context.Context, reporter *models.User) ([]models.Report, error)
	All(ctx context.Context) ([]models.Report, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, author *models.User, impression, comment string) error
	List(ctx context.Context) ([]models.Feedback, error)
}

type ContactService interface {
	Send(ctx context.Context, name, email, message string) error
}

type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Analytics(ctx context.Context) (*models.Analytics, error)
	RecentActivities(ctx context.Context) ([]models.RecentActivity, error)
	Settings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, st models.Settings) (bool, error)
}

type PredictionService interface {
	Predict(ctx context.Context, user *models.User, username string) (*services.PredictionResult, error)
	CheckFeatures(ctx context.Context, fv models.FeatureVector, captchaToken, remoteIP string) (*models.Classification, error)
	Results(ctx context.Context) ([]models.ProfileResult, error)
}

type ExportService interface {
	Export(ctx context.Context, kind string) (*services.ExportLink, error)
}

// Services is everything the API serves. All fields are required.
type Services struct {
	Auth       AuthService
	Account    AccountService
	Reports    ReportService
	Feedback   FeedbackService
	Contact    ContactService
	Admin      AdminService
	Prediction PredictionService
	Export     ExportService
}

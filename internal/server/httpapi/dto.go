package httpapi

import (
	"time"

	"github.com/instaguard/instaguard/internal/server/models"
)

const (
	isoLayout    = "2006-01-02T15:04:05.000Z"
	minuteLayout = "2006-01-02 15:04"
)

func iso(t time.Time) string { return t.UTC().Format(isoLayout) }

type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type googleRequest struct {
	IDToken string `json:"id_token"`
	Captcha string `json:"captcha"`
}

type googleResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

type signupRequest struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Mobile          string `json:"mobile"`
	Captcha         string `json:"captcha"`
}

type userInfoResponse struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type profileResponse struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

type updateProfileRequest struct {
	FullName string `json:"fullname"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type updatePasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type activityResponse struct {
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
	Details   string `json:"details"`
}

type historyResponse struct {
	History []activityResponse `json:"history"`
}

type reportRequest struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// reportResponse carries dateReported either as epoch milliseconds or as
// an ISO string, depending on the endpoint.
type reportResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	DateReported any    `json:"dateReported"`
	UserEmail    string `json:"userEmail,omitempty"`
}

func reportMillis(r models.Report) reportResponse {
	return reportResponse{
		ID:           r.ID,
		Username:     r.Username,
		Reason:       r.Reason,
		Status:       r.Status,
		DateReported: r.DateReported.UnixMilli(),
	}
}

func reportISO(r models.Report) reportResponse {
	out := reportMillis(r)
	out.DateReported = iso(r.DateReported)
	return out
}

func mapReports(list []models.Report, fn func(models.Report) reportResponse) []reportResponse {
	out := make([]reportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, fn(r))
	}
	return out
}

type predictRequest struct {
	Username string `json:"username"`
}

type predictResponse struct {
	Username   string   `json:"username"`
	Prediction string   `json:"prediction"`
	Confidence *float64 `json:"confidence"`
	Message    string   `json:"message"`
	Note       string   `json:"note,omitempty"`
}

// featureCheckRequest is the hand-entered form of the model's input.
type featureCheckRequest struct {
	ProfilePic          float64 `json:"profilePic" binding:"min=0,max=1"`
	UsernameLengthRatio float64 `json:"usernameLengthRatio" binding:"min=0"`
	FullnameWords       float64 `json:"fullnameWords" binding:"min=0"`
	FullnameLengthRatio float64 `json:"fullnameLengthRatio" binding:"min=0"`
	NameMatchesUsername float64 `json:"nameMatchesUsername" binding:"min=0,max=1"`
	BioLength           float64 `json:"bioLength" binding:"min=0"`
	HasExternalURL      float64 `json:"hasExternalUrl" binding:"min=0,max=1"`
	IsPrivate           float64 `json:"isPrivate" binding:"min=0,max=1"`
	PostsCount          float64 `json:"postsCount" binding:"min=0"`
	FollowersCount      float64 `json:"followersCount" binding:"min=0"`
	FollowingCount      float64 `json:"followingCount" binding:"min=0"`
	Captcha             string  `json:"captcha"`
}

func (r featureCheckRequest) vector() models.FeatureVector {
	return models.FeatureVector{
		ProfilePic:          r.ProfilePic,
		UsernameLengthRatio: r.UsernameLengthRatio,
		FullnameWords:       r.FullnameWords,
		FullnameLengthRatio: r.FullnameLengthRatio,
		NameMatchesUsername: r.NameMatchesUsername,
		DescriptionLength:   r.BioLength,
		ExternalURL:         r.HasExternalURL,
		Private:             r.IsPrivate,
		Posts:               r.PostsCount,
		Followers:           r.FollowersCount,
		Follows:             r.FollowingCount,
	}
}

type featureCheckResponse struct {
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
}

type profileResultResponse struct {
	ID           string             `json:"_id"`
	UserID       string             `json:"user_id"`
	Username     string             `json:"username"`
	Features     map[string]float64 `json:"features"`
	Prediction   string             `json:"prediction"`
	ModelVersion string             `json:"model_version"`
	Confidence   *float64           `json:"confidence"`
	Timestamp    int64              `json:"timestamp"`
	Note         *string            `json:"note"`
}

type feedbackRequest struct {
	Impression string `json:"impression"`
	Feedback   string `json:"feedback"`
}

type feedbackResponse struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Impression string `json:"impression"`
	Feedback   string `json:"feedback"`
	Timestamp  string `json:"timestamp"`
}

type feedbackListResponse struct {
	Feedback []feedbackResponse `json:"feedback"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type usersResponse struct {
	Users []models.UserView `json:"users"`
}

type recentUserResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullname"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
}

type analyticsResponse struct {
	TotalUsers     int                  `json:"totalUsers"`
	VerifiedUsers  int                  `json:"verifiedUsers"`
	TotalReports   int                  `json:"totalReports"`
	PendingReports int                  `json:"pendingReports"`
	RecentUsers    []recentUserResponse `json:"recentUsers"`
}

type recentActivityResponse struct {
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type recentActivitiesResponse struct {
	Activities []recentActivityResponse `json:"activities"`
}

type settingsRequest struct {
	SiteName        string `json:"siteName" binding:"required"`
	SupportEmail    string `json:"supportEmail" binding:"required,email"`
	NotifyReports   bool   `json:"notifyReports"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

type deleteUserURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type exportURI struct {
	Kind string `uri:"kind" binding:"required,oneof=reports results feedback"`
}

type exportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

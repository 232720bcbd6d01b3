package models

type PredictRequest struct {
	Username string `json:"username"`
}

// Prediction is the username-based classification. Confidence is nil when
// the model could not produce a probability.
type Prediction struct {
	Username   string   `json:"username"`
	Prediction string   `json:"prediction"`
	Confidence *float64 `json:"confidence"`
	Message    string   `json:"message"`
	Note       string   `json:"note,omitempty"`
}

// FeatureVector is the set of profile metrics a user can submit by hand.
type FeatureVector struct {
	ProfilePic          int     `json:"profilePic"`
	UsernameLengthRatio float64 `json:"usernameLengthRatio"`
	FullnameWords       int     `json:"fullnameWords"`
	FullnameLengthRatio float64 `json:"fullnameLengthRatio"`
	NameMatchesUsername int     `json:"nameMatchesUsername"`
	BioLength           int     `json:"bioLength"`
	HasExternalURL      int     `json:"hasExternalUrl"`
	IsPrivate           int     `json:"isPrivate"`
	PostsCount          int     `json:"postsCount"`
	FollowersCount      int     `json:"followersCount"`
	FollowingCount      int     `json:"followingCount"`
}

type FeatureCheckRequest struct {
	FeatureVector
	Captcha string `json:"captcha"`
}

// FeatureCheck is the raw classifier answer: Prediction is 1 for fake and
// 0 for real.
type FeatureCheck struct {
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
}

// Label renders the numeric prediction the way the dashboards show it.
func (f FeatureCheck) Label() string {
	if f.Prediction == 1 {
		return "Fake Profile"
	}
	return "Real Profile"
}

type ProfileResult struct {
	ID           string             `json:"_id"`
	UserID       string             `json:"user_id"`
	Username     string             `json:"username"`
	Features     map[string]float64 `json:"features"`
	Prediction   string             `json:"prediction"`
	ModelVersion string             `json:"model_version"`
	Confidence   *float64           `json:"confidence"`
	Timestamp    Timestamp          `json:"timestamp"`
	Note         *string            `json:"note"`
}

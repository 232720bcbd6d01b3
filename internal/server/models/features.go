package models

// FeatureVector is the classifier input. JSON names follow the column
// names the model was trained on.
type FeatureVector struct {
	ProfilePic          float64 `json:"profile pic"`
	UsernameLengthRatio float64 `json:"nums/length username"`
	FullnameWords       float64 `json:"fullname words"`
	FullnameLengthRatio float64 `json:"nums/length fullname"`
	NameMatchesUsername float64 `json:"name==username"`
	DescriptionLength   float64 `json:"description length"`
	ExternalURL         float64 `json:"external URL"`
	Private             float64 `json:"private"`
	Posts               float64 `json:"#posts"`
	Followers           float64 `json:"#followers"`
	Follows             float64 `json:"#follows"`
}

// Map returns the vector keyed by column name, the form stored with a
// prediction result.
func (f FeatureVector) Map() map[string]float64 {
	return map[string]float64{
		"profile pic":          f.ProfilePic,
		"nums/length username": f.UsernameLengthRatio,
		"fullname words":       f.FullnameWords,
		"nums/length fullname": f.FullnameLengthRatio,
		"name==username":       f.NameMatchesUsername,
		"description length":   f.DescriptionLength,
		"external URL":         f.ExternalURL,
		"private":              f.Private,
		"#posts":               f.Posts,
		"#followers":           f.Followers,
		"#follows":             f.Follows,
	}
}

// Classification is the classifier's answer. Label is 1 for fake.
type Classification struct {
	Label       int      `json:"prediction"`
	Probability *float64 `json:"probability"`
}

// InstagramProfile is what the profile lookup service returns.
type InstagramProfile struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Biography      string `json:"biography"`
	ExternalURL    string `json:"external_url"`
	HasProfilePic  bool   `json:"has_profile_pic"`
	IsPrivate      bool   `json:"is_private"`
	PostsCount     int    `json:"posts"`
	FollowersCount int    `json:"followers"`
	FollowingCount int    `json:"followees"`
}

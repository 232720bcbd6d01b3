package models

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token"`
	Captcha string `json:"captcha,omitempty"`
}

type GoogleSignInResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

type SignupRequest struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Mobile          string `json:"mobile"`
	Captcha         string `json:"captcha"`
}

// MessageResponse is the generic {message} body. Success is only set by
// the password-change endpoint.
type MessageResponse struct {
	Message string `json:"message"`
	Success *bool  `json:"success,omitempty"`
}

type UserInfo struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type Profile struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullname"`
	Password string `json:"password,omitempty"`
	Captcha  string `json:"captcha"`
}

type Activity struct {
	Action    string    `json:"action"`
	Timestamp Timestamp `json:"timestamp"`
	Details   string    `json:"details"`
}

type HistoryResponse struct {
	History []Activity `json:"history"`
}

// Session is what the client keeps between runs.
type Session struct {
	Token        string
	RefreshToken string
	Role         string
	AuthMethod   string
	LoginTime    time.Time
}

// Auth methods stored with a session.
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

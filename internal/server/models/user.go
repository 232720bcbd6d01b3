// Package models holds the server-side records persisted in Postgres and
// the JSON bodies of the HTTP API.
package models

import "time"

type User struct {
	ID                      string
	FullName                string
	Email                   string
	PasswordHash            []byte
	Mobile                  string
	Role                    string
	IsVerified              bool
	VerificationToken       *string
	VerificationTokenExpiry *time.Time
	RefreshToken            *string
	CreatedAt               time.Time
	LastLogin               *time.Time
	UpdatedAt               *time.Time
}

// UserView is a user as listed on the admin dashboard.
type UserView struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullname"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

func (u *User) View() UserView {
	return UserView{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Mobile:     u.Mobile,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}

type Activity struct {
	ID        string
	UserID    string
	Action    string
	Details   string
	Timestamp time.Time
}

// Actions recorded in a user's history.
const (
	ActionSignedUp       = "Signed up"
	ActionLoggedIn       = "Logged in"
	ActionGoogleSignIn   = "Google Sign-In"
	ActionProfileUpdated = "Profile updated"
)

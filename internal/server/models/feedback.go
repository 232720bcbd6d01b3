package models

import "time"

type Feedback struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Impression string
	Comment    string
	Timestamp  time.Time
}

type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type Settings struct {
	SiteName        string `json:"siteName"`
	SupportEmail    string `json:"supportEmail"`
	NotifyReports   bool   `json:"notifyReports"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

// DefaultSettings is stored the first time settings are read.
func DefaultSettings() Settings {
	return Settings{
		SiteName:      "InstaGuard",
		SupportEmail:  "instaguard7@gmail.com",
		NotifyReports: true,
	}
}

// Analytics is the admin dashboard summary. Only role=user accounts count.
type Analytics struct {
	TotalUsers     int
	VerifiedUsers  int
	TotalReports   int
	PendingReports int
	RecentUsers    []User
}

type RecentActivity struct {
	Description string
	Timestamp   time.Time
}

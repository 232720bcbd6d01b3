package models

import "time"

type User struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullname"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

type UserList struct {
	Users []User `json:"users"`
}

type RecentUser struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullname"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  Timestamp `json:"createdAt"`
}

type Analytics struct {
	TotalUsers     int          `json:"totalUsers"`
	VerifiedUsers  int          `json:"verifiedUsers"`
	TotalReports   int          `json:"totalReports"`
	PendingReports int          `json:"pendingReports"`
	RecentUsers    []RecentUser `json:"recentUsers"`
}

// RecentActivity timestamps are preformatted as "YYYY-MM-DD HH:MM".
type RecentActivity struct {
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type RecentActivities struct {
	Activities []RecentActivity `json:"activities"`
}

// Dashboard is the combined admin landing view.
type Dashboard struct {
	Analytics  Analytics
	Activities []RecentActivity
}

type Settings struct {
	SiteName        string `json:"siteName"`
	SupportEmail    string `json:"supportEmail"`
	NotifyReports   bool   `json:"notifyReports"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

// Export kinds accepted by the admin export endpoint.
const (
	ExportReports  = "reports"
	ExportResults  = "results"
	ExportFeedback = "feedback"
)

type ExportLink struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package models

type ReportRequest struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// Report is returned by /reports (millisecond dateReported) and by
// /my-reports and /admin-reports (ISO dateReported). Timestamp accepts both.
type Report struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	DateReported Timestamp `json:"dateReported"`
}

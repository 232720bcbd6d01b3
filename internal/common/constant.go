// Package common contains shared constants, sentinel errors and small helpers
// used by both the InstaGuard client and server.
package common

// HTTP header names shared by the client and the server.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-ID"
)

// Account roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Report statuses.
const (
	ReportStatusPending  = "Pending"
	ReportStatusResolved = "Resolved"
)

// Prediction labels returned by the classifier.
const (
	PredictionFake = "Fake"
	PredictionReal = "Real"
)

// DefaultModelVersion is stored with every prediction when no model version
// is configured.
const DefaultModelVersion = "v1.0"

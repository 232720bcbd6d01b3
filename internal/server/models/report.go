package models

import "time"

type Report struct {
	ID           string
	Username     string
	Reason       string
	Status       string
	DateReported time.Time
	UserEmail    string
}

type ProfileResult struct {
	ID           string
	UserID       string
	Username     string
	Features     map[string]float64
	Prediction   string
	ModelVersion string
	Confidence   *float64
	Timestamp    time.Time
	Note         *string
}

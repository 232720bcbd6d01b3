package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/instaguard/instaguard/internal/flagx"
	"github.com/instaguard/instaguard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration, so they can be strings like "1h" or integer nanoseconds.
// Empty values leave the current setting alone.
type JsonConfig struct {
	Addr                      string          `json:"addr"`
	DatabaseDSN               string          `json:"database_dsn"`
	SecretKey                 string          `json:"secret_key"`
	AccessTokenValidity       *timex.Duration `json:"access_token_validity"`
	GoogleAccessTokenValidity *timex.Duration `json:"google_access_token_validity"`
	RefreshTokenValidity      *timex.Duration `json:"refresh_token_validity"`
	S3RootUser                string          `json:"s3_root_user"`
	S3RootPassword            string          `json:"s3_root_password"`
	S3Bucket                  string          `json:"s3_bucket"`
	S3Region                  string          `json:"s3_region"`
	S3BaseEndpoint            string          `json:"s3_base_endpoint"`
	RedisAddr                 string          `json:"redis_addr"`
	RateLimit                 int             `json:"rate_limit"`
	RateLimitWindow           *timex.Duration `json:"rate_limit_window"`
	ClassifierURL             string          `json:"classifier_url"`
	ProfileLookupURL          string          `json:"profile_lookup_url"`
	RecaptchaSecret           string          `json:"recaptcha_secret"`
	GoogleClientID            string          `json:"google_client_id"`
	CORSOrigin                string          `json:"cors_origin"`
	ModelVersion              string          `json:"model_version"`
	PublicURL                 string          `json:"public_url"`
	SMTPHost                  string          `json:"smtp_host"`
	SMTPPort                  int             `json:"smtp_port"`
	SMTPUser                  string          `json:"smtp_user"`
	SMTPPassword              string          `json:"smtp_password"`
	SMTPFrom                  string          `json:"smtp_from"`
	SupportEmail              string          `json:"support_email"`
	LogLevel                  string          `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without one it does nothing. Read and unmarshal errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.Addr, jc.Addr)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.SecretKey, jc.SecretKey)
	setDuration(&cfg.AccessTokenValidity, jc.AccessTokenValidity)
	setDuration(&cfg.GoogleAccessTokenValidity, jc.GoogleAccessTokenValidity)
	setDuration(&cfg.RefreshTokenValidity, jc.RefreshTokenValidity)
	setString(&cfg.S3RootUser, jc.S3RootUser)
	setString(&cfg.S3RootPassword, jc.S3RootPassword)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setInt(&cfg.RateLimit, jc.RateLimit)
	setDuration(&cfg.RateLimitWindow, jc.RateLimitWindow)
	setString(&cfg.ClassifierURL, jc.ClassifierURL)
	setString(&cfg.ProfileLookupURL, jc.ProfileLookupURL)
	setString(&cfg.RecaptchaSecret, jc.RecaptchaSecret)
	setString(&cfg.GoogleClientID, jc.GoogleClientID)
	setString(&cfg.CORSOrigin, jc.CORSOrigin)
	setString(&cfg.ModelVersion, jc.ModelVersion)
	setString(&cfg.PublicURL, jc.PublicURL)
	setString(&cfg.SMTPHost, jc.SMTPHost)
	setInt(&cfg.SMTPPort, jc.SMTPPort)
	setString(&cfg.SMTPUser, jc.SMTPUser)
	setString(&cfg.SMTPPassword, jc.SMTPPassword)
	setString(&cfg.SMTPFrom, jc.SMTPFrom)
	setString(&cfg.SupportEmail, jc.SupportEmail)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}

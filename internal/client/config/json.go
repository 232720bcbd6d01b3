package config

import (
	"encoding/json"
	"os"

	"github.com/instaguard/instaguard/internal/flagx"
	"github.com/instaguard/instaguard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration, so they can be strings like "3s" or integer nanoseconds.
// Empty values leave the current setting alone.
type JsonConfig struct {
	ServerURL           string          `json:"server_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DataDir             string          `json:"data_dir"`
	LogLevel            string          `json:"log_level"`
	RecaptchaSiteKey    string          `json:"recaptcha_site_key"`
	GoogleClientID      string          `json:"google_client_id"`
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

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.RecaptchaSiteKey, jc.RecaptchaSiteKey)
	setString(&cfg.GoogleClientID, jc.GoogleClientID)
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
